// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package pondfinder

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/siemens/pondfinder/log"
	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	_ "github.com/siemens/pondfinder/probe/all" // pull in platform probe plugins

	"github.com/thediveo/go-plugger/v3"
)

// DefaultCacheTTL is for how long Finders consider a platform classification
// to still be fresh before probing the process's surroundings anew. Use
// [WithCacheTTL] to set a different per-Finder TTL.
const DefaultCacheTTL = 30 * time.Second

// The names of the platform probe plugins the detection policy below refers
// to; the plugins register themselves under these names.
const (
	kubernetesProbe = "kubernetes"
	dockerProbe     = "docker"
	dockerEnvProbe  = "docker-env"
	podmanProbe     = "podman"
	crioProbe       = "cri-o"
	containerdProbe = "containerd"
	rktProbe        = "rkt"
	lxcProbe        = "lxc"
	nspawnProbe     = "systemd-nspawn"
)

// policyStep pairs a platform probe (by plugin name) with the platform that
// a positive finding of this probe results in at this particular point of
// the detection policy.
type policyStep struct {
	probe    string
	platform platform.Platform
}

// kubernetesRuntimes disambiguates the runtime underneath a pod after the
// Kubernetes gate probe has already fired. The order is authoritative and
// must not be changed: CRI-O strictly before Docker, as CRI-O pod containers
// regularly show Docker-ish traces at the same time, while the reverse
// doesn't happen. Pods of any other runtime (most notably CRI containerd,
// which keeps its containers free of runtime traces) map to the generic
// Kubernetes platform instead.
var kubernetesRuntimes = []policyStep{
	{crioProbe, platform.KubernetesCRIO},
	{dockerEnvProbe, platform.KubernetesDocker},
}

// standaloneSequence is the authoritative probing order outside Kubernetes,
// with the first positive probe winning. The order encodes signal strength,
// not alphabet: the Docker marker file outranks everything else, as several
// runtimes impersonate Docker in the “container” environment variable. The
// environment-only Docker probe in turn gets demoted below the runtimes
// with distinctive signals of their own, where it merely catches Docker-ish
// environments lacking the marker file.
var standaloneSequence = []policyStep{
	{dockerProbe, platform.InDocker},
	{podmanProbe, platform.InPodman},
	{crioProbe, platform.InCRIO},
	{dockerEnvProbe, platform.InDocker},
	{containerdProbe, platform.InContainerd},
	{rktProbe, platform.InRkt},
	{lxcProbe, platform.InLXC},
	{nspawnProbe, platform.InSystemdNspawn},
}

// Finder determines the container platform the current process lives in,
// keeping its most recent finding around for a short period of time. It can
// be safely used from multiple goroutines.
//
// On demand, a Finder runs the platform probes in a fixed order of
// precedence over the traces the various container runtimes leave in a
// container's environment variables and filesystem, weighing the gathered
// evidence into one of the closed set of [platform.Platform]
// classifications.
type Finder struct {
	pond   probe.Pond             // the surroundings the probes sense.
	ttl    time.Duration          // for how long a classification stays fresh.
	probes map[string]probe.Probe // platform probes, by plugin name.
	now    func() time.Time       // cache clock; tests nudge it around.

	mux      sync.Mutex        // serializes detection passes and cache access.
	platform platform.Platform // most recently cached classification.
	cachedAt time.Time         // zero time: no classification cached.
}

// New returns a Finder object for further use, stocked with all platform
// probe plugins. Options ([NewOption], such as [WithCacheTTL] and
// [WithPond]) allow to customize the Finder object returned.
//
// As we're working only with a static set of plugins we query the plugin
// group just once per Finder.
func New(opts ...NewOption) *Finder {
	f := &Finder{
		pond: probe.System(),
		ttl:  DefaultCacheTTL,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	probes := plugger.Group[probe.Probe]().PluginsSymbols()
	f.probes = make(map[string]probe.Probe, len(probes))
	for _, symbol := range probes {
		f.probes[symbol.Plugin] = symbol.S
	}
	log.Infof("available platform probe plugins: %s",
		strings.Join(plugger.Group[probe.Probe]().Plugins(), ", "))
	return f
}

// Detect returns the platform the current process lives in. It never fails:
// whenever in doubt, the classification is [platform.OnHost]. A fresh-enough
// previous classification is served from the Finder's cache without any
// renewed probing; [WithRefresh] forces a full detection pass instead.
//
// The context bounds only the network-dependent probe signals of a pass;
// environment and file signals are immediate anyway.
func (f *Finder) Detect(ctx context.Context, opts ...DetectOption) platform.Platform {
	var dopts detectOpts
	for _, opt := range opts {
		opt(&dopts)
	}
	f.mux.Lock()
	defer f.mux.Unlock()
	if !dopts.refresh && f.ttl > 0 && !f.cachedAt.IsZero() {
		if age := f.now().Sub(f.cachedAt); age <= f.ttl {
			log.Debugf("platform classification “%s” still fresh after %s",
				f.platform, age)
			return f.platform
		}
	}
	p := f.classify(ctx)
	// Replace the cached classification in one go, never piecemeal, so a
	// concurrent pass can at worst see the complete previous entry.
	f.platform = p
	f.cachedAt = f.now()
	log.Debugf("detected platform “%s”", p)
	return p
}

// ResetCache forgets any previously cached platform classification, so that
// the next Detect call runs a full detection pass again. It is safe to call
// at any time, even when nothing has been cached yet.
func (f *Finder) ResetCache() {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.platform = platform.Platform{}
	f.cachedAt = time.Time{}
}

// classify runs a full detection pass: the Kubernetes gate probe first,
// followed by either the pod runtime disambiguation or the standalone
// probing sequence. Probes always run one at a time, as the first positive
// probe of a sequence wins and running later probes of a sequence
// concurrently would just throw their outcomes away.
func (f *Finder) classify(ctx context.Context) platform.Platform {
	if f.evidence(ctx, kubernetesProbe) {
		log.Debugf("Kubernetes pod detected, disambiguating pod runtime")
		for _, step := range kubernetesRuntimes {
			if f.evidence(ctx, step.probe) {
				return step.platform
			}
		}
		return platform.KubernetesOther
	}
	log.Debugf("no Kubernetes, probing standalone container runtimes")
	for _, step := range standaloneSequence {
		if f.evidence(ctx, step.probe) {
			return step.platform
		}
	}
	return platform.OnHost
}

// evidence runs the named platform probe, reducing failures of any kind (a
// probe error, a panicking probe, even a missing plugin) to plain “no
// evidence”. A single broken probe thus can never take down a detection
// pass, it just doesn't contribute to it.
func (f *Finder) evidence(ctx context.Context, name string) (found bool) {
	p, ok := f.probes[name]
	if !ok {
		log.Errorf("no “%s” platform probe available, taking as no evidence", name)
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("platform probe “%s” panicked, taking as no evidence: %v",
				name, r)
			found = false
		}
	}()
	var err error
	found, err = p.Detect(ctx, f.pond)
	if err != nil {
		log.Errorf("platform probe “%s” failed, taking as no evidence, reason: %s",
			name, err.Error())
		return false
	}
	log.Debugf("platform probe “%s”: evidence %t", name, found)
	return found
}
