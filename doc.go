/*
Package pondfinder detects the container platform (the “pond”) that the
current process lives in: a Kubernetes pod, a standalone container under one
of several well-known container engines, or no container at all. It tells
the ponds apart by the traces the runtimes leave behind in a container's
environment variables and filesystem, without requiring any access to
container engine APIs.

# Supported Platforms

The following platforms are detected:

  - Kubernetes pods, differentiating the CRI-O, Docker (cri-dockerd), and
    “other” (usually CRI containerd) pod runtimes,
  - standalone [Docker/Moby], [Podman], [CRI-O], [containerd], [rkt], [LXC],
    and [systemd-nspawn] containers,
  - the host, when no container platform could be made out.

# Quick Start

That's all that is necessary:

	where := pondfinder.Detect(ctx)

Boringly simple, right?

The package-level [Detect] uses a process-wide shared [Finder] and is safe
to be used in concurrent detections. Separate Finders with their own
settings can be created using [New].

# Principles of “Pond” Detection

Platform detection works on evidence that is deliberately cheap to gather:
environment variables, marker files, container metadata files, and a single
cluster-internal DNS name. Each signal is gathered by a platform probe
plugin, with the probes kept strictly separate from the policy weighing
their findings.

The policy first settles whether the process lives in a Kubernetes pod, as
pod containers regularly also carry standalone-looking runtime traces. Only
then does it disambiguate the pod runtime, or else work through the
standalone runtimes in a fixed order of decreasing signal strength, where
the first positive probe wins. When all probes come up empty-handed, the
process is considered to live on the host; detection thus never fails, it
only ever gets less specific.

Individual probes may still fail, for instance, where marker files cannot
be checked due to restrictive security policies. Such failures get logged
and the affected probes simply don't contribute evidence; see also the
[github.com/siemens/pondfinder/log] package for hooking up your logging of
choice.

Classifications get cached for a short period of time ([DefaultCacheTTL]),
as the platform a process lives in doesn't change mid-flight: repeated
Detect calls are designed to be sprinkled liberally over codepaths that need
to behave differently inside and outside of containers.

[Docker/Moby]: https://docker.com
[Podman]: https://podman.io
[CRI-O]: https://cri-o.io
[containerd]: https://containerd.io
[rkt]: https://github.com/rkt/rkt
[LXC]: https://linuxcontainers.org
[systemd-nspawn]: https://systemd.io/CONTAINER_INTERFACE/
*/
package pondfinder
