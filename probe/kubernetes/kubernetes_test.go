// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package kubernetes

import (
	"context"
	"io/fs"
	"net"

	"github.com/siemens/pondfinder/internal/test"
	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	"github.com/thediveo/go-plugger/v3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("Kubernetes probe", func() {

	It("registers correctly", func() {
		Expect(plugger.Group[probe.Probe]().Plugins()).To(
			ContainElement(Name))
	})

	It("maps to the generic Kubernetes platform", func() {
		Expect((&Probe{}).Platform()).To(Equal(platform.KubernetesOther))
	})

	It("spots the kubelet's API service environment variable", func(ctx context.Context) {
		pond := test.NewPond().SetEnv(ServiceHostVar, "10.96.0.1")
		Expect(Successful((&Probe{}).Detect(ctx, pond))).To(BeTrue())
	})

	It("doesn't fall for an empty API service environment variable", func(ctx context.Context) {
		pond := test.NewPond().SetEnv(ServiceHostVar, "")
		Expect(Successful((&Probe{}).Detect(ctx, pond))).To(BeFalse())
	})

	It("spots the automounted service account", func(ctx context.Context) {
		pond := test.NewPond().AddPath(ServiceAccountPath)
		Expect(Successful((&Probe{}).Detect(ctx, pond))).To(BeTrue())
	})

	It("spots the cluster-internal API service DNS name", func(ctx context.Context) {
		pond := test.NewPond().
			AddHost(APIServiceDNSName, net.IPAddr{IP: net.ParseIP("10.96.0.1")})
		Expect(Successful((&Probe{}).Detect(ctx, pond))).To(BeTrue())
	})

	It("finds nothing outside a cluster", func(ctx context.Context) {
		Expect(Successful((&Probe{}).Detect(ctx, test.NewPond()))).To(BeFalse())
	})

	It("reports signals it could not gather", func(ctx context.Context) {
		pond := test.NewPond().FailPath(ServiceAccountPath, fs.ErrPermission)
		found, err := (&Probe{}).Detect(ctx, pond)
		Expect(found).To(BeFalse())
		Expect(err).To(MatchError(fs.ErrPermission))
	})

	It("doesn't mistake resolver failures for cluster evidence", func(ctx context.Context) {
		pond := test.NewPond().FailHost(APIServiceDNSName, &net.DNSError{
			Err:         "server misbehaving",
			Name:        APIServiceDNSName,
			IsTemporary: true,
		})
		found, err := (&Probe{}).Detect(ctx, pond)
		Expect(found).To(BeFalse())
		Expect(err).To(HaveOccurred())
	})

	It("lets positive evidence win over an earlier failed signal", func(ctx context.Context) {
		pond := test.NewPond().
			FailPath(ServiceAccountPath, fs.ErrPermission).
			AddHost(APIServiceDNSName, net.IPAddr{IP: net.ParseIP("10.96.0.1")})
		Expect(Successful((&Probe{}).Detect(ctx, pond))).To(BeTrue())
	})

})
