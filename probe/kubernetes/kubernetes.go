// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package kubernetes

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	"github.com/thediveo/go-plugger/v3"
)

// Name of this platform probe plugin.
const Name = "kubernetes"

const (
	// ServiceHostVar is the environment variable through which the kubelet
	// tells every container of a pod where to reach the Kubernetes API
	// service.
	ServiceHostVar = "KUBERNETES_SERVICE_HOST"
	// ServiceAccountPath is where a pod's service account token and
	// certificates get mounted, unless automounting has been disabled.
	ServiceAccountPath = "/var/run/secrets/kubernetes.io/serviceaccount"
	// APIServiceDNSName is the cluster-internal DNS name of the Kubernetes
	// API service, resolvable only from inside a cluster.
	APIServiceDNSName = "kubernetes.default.svc"
)

// dnsTimeout caps the DNS signal, the only probe signal with
// network-dependent latency.
const dnsTimeout = 2 * time.Second

// Register this Kubernetes platform probe plugin. This statically ensures
// that the Probe interface is fully implemented.
func init() {
	plugger.Group[probe.Probe]().Register(
		&Probe{}, plugger.WithPlugin(Name))
}

// Probe implements the probe.Probe interface. This is automatically
// type-checked by the previous plugin registration (Generics can be sweet,
// sometimes *snicker*).
type Probe struct{}

// Platform returns the generic Kubernetes platform; the detection policy
// narrows it down further when runtime-specific evidence is also found.
func (p *Probe) Platform() platform.Platform { return platform.KubernetesOther }

// Detect looks for the traces the kubelet leaves in every pod container:
// the API service environment variable, the mounted service account, and
// the cluster-internal API service DNS name. Any single positive signal
// suffices; checking stops at the first hit.
func (p *Probe) Detect(ctx context.Context, pond probe.Pond) (bool, error) {
	if host, ok := pond.LookupEnv(ServiceHostVar); ok && host != "" {
		return true, nil
	}
	ok, patherr := pond.PathExists(ServiceAccountPath)
	if ok {
		return true, nil
	}
	dnsctx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()
	addrs, dnserr := pond.LookupIPAddrs(dnsctx, APIServiceDNSName)
	if dnserr != nil {
		var resolvererr *net.DNSError
		if errors.As(dnserr, &resolvererr) && resolvererr.IsNotFound {
			// NXDOMAIN is the clear-cut answer “not inside any cluster”,
			// not a resolution failure.
			dnserr = nil
		}
	} else if len(addrs) > 0 {
		return true, nil
	}
	return false, errors.Join(patherr, dnserr)
}
