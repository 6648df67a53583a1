// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package platform

import "golang.org/x/exp/slices"

// Category classifies the general nature of the environment a process was
// found to live in: a Kubernetes-managed pod container, a standalone
// container without any orchestration above it, or no container at all.
type Category int

const (
	// Host indicates that no container environment could be detected, so the
	// process is considered to run directly on the host (or inside an
	// enclosure unknown to us, which for all practical purposes is the same).
	Host Category = iota
	// Standalone indicates a container run by a container engine, without any
	// Kubernetes orchestration on top.
	Standalone
	// Kubernetes indicates a container inside a Kubernetes-managed pod.
	Kubernetes
)

// String returns the lower-case name of this category.
func (c Category) String() string {
	switch c {
	case Host:
		return "host"
	case Standalone:
		return "standalone"
	case Kubernetes:
		return "kubernetes"
	}
	return "invalid"
}

// Runtime identifies the container runtime (engine) in charge of the
// process's enclosure, if any.
type Runtime int

const (
	// NoRuntime is the runtime of the Host category only: there is no
	// container, so there is no runtime either.
	NoRuntime Runtime = iota
	// Docker is the Docker/moby engine.
	Docker
	// CRIO is the CRI-O runtime.
	CRIO
	// Containerd is a containerd engine used standalone, that is, not hidden
	// behind a Docker engine or Kubernetes CRI API.
	Containerd
	// Podman is the Podman engine, in whatever incarnation.
	Podman
	// Rkt is the (sunset) rkt container engine.
	Rkt
	// LXC is the LXC container runtime.
	LXC
	// SystemdNspawn is systemd's own container manager.
	SystemdNspawn
	// OtherRuntime covers Kubernetes pods whose underlying runtime announces
	// itself neither as CRI-O nor as Docker; typically, this will be a CRI
	// containerd.
	OtherRuntime
)

// String returns the lower-case name of this runtime.
func (r Runtime) String() string {
	switch r {
	case NoRuntime:
		return "none"
	case Docker:
		return "docker"
	case CRIO:
		return "cri-o"
	case Containerd:
		return "containerd"
	case Podman:
		return "podman"
	case Rkt:
		return "rkt"
	case LXC:
		return "lxc"
	case SystemdNspawn:
		return "systemd-nspawn"
	case OtherRuntime:
		return "other"
	}
	return "invalid"
}

// Platform is the result of classifying the environment a process lives in:
// the category of enclosure together with the container runtime providing
// it. Platform values are comparable, so classifications can simply be
// compared using ==.
//
// Only the platform values predeclared in this package can ever result from
// a classification; nonsensical category/runtime pairings (such as a
// Kubernetes pod without any runtime) cannot be expressed. The zero Platform
// is OnHost.
type Platform struct {
	category Category
	runtime  Runtime
}

// The closed set of platforms a classification can result in.
var (
	// KubernetesCRIO is a Kubernetes pod container run by CRI-O.
	KubernetesCRIO = Platform{Kubernetes, CRIO}
	// KubernetesDocker is a Kubernetes pod container run by a Docker engine
	// (nowadays through cri-dockerd).
	KubernetesDocker = Platform{Kubernetes, Docker}
	// KubernetesOther is a Kubernetes pod container run by some runtime that
	// is neither CRI-O nor Docker, most probably a plain CRI containerd.
	KubernetesOther = Platform{Kubernetes, OtherRuntime}
	// InDocker is a standalone container run by a Docker/moby engine.
	InDocker = Platform{Standalone, Docker}
	// InPodman is a standalone container run by Podman.
	InPodman = Platform{Standalone, Podman}
	// InCRIO is a standalone container run by CRI-O, without Kubernetes.
	InCRIO = Platform{Standalone, CRIO}
	// InContainerd is a standalone container run directly by containerd.
	InContainerd = Platform{Standalone, Containerd}
	// InRkt is a standalone container run by the rkt engine.
	InRkt = Platform{Standalone, Rkt}
	// InLXC is a standalone LXC container.
	InLXC = Platform{Standalone, LXC}
	// InSystemdNspawn is a standalone container run by systemd-nspawn.
	InSystemdNspawn = Platform{Standalone, SystemdNspawn}
	// OnHost is no container at all; it doubles as the zero Platform.
	OnHost = Platform{Host, NoRuntime}
)

// displayNames maps each platform of the closed set to its fixed
// human-readable display name.
var displayNames = map[Platform]string{
	KubernetesCRIO:   "Kubernetes with CRI-O",
	KubernetesDocker: "Kubernetes with Docker",
	KubernetesOther:  "Kubernetes",
	InDocker:         "Docker",
	InPodman:         "Podman",
	InCRIO:           "CRI-O",
	InContainerd:     "containerd",
	InRkt:            "rkt",
	InLXC:            "LXC",
	InSystemdNspawn:  "systemd-nspawn",
	OnHost:           "no container",
}

// Category returns the category of this platform.
func (p Platform) Category() Category { return p.category }

// Runtime returns the container runtime of this platform, or NoRuntime in
// case of OnHost.
func (p Platform) Runtime() Runtime { return p.runtime }

// String returns the human-readable display name of this platform, such as
// “Kubernetes with CRI-O” or “no container”.
func (p Platform) String() string {
	if name, ok := displayNames[p]; ok {
		return name
	}
	return "invalid platform"
}

// MarshalText returns the display name of this platform, implementing
// [encoding.TextMarshaler].
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// platforms is the closed set of platforms, for handing out copies of.
var platforms = []Platform{
	KubernetesCRIO,
	KubernetesDocker,
	KubernetesOther,
	InDocker,
	InPodman,
	InCRIO,
	InContainerd,
	InRkt,
	InLXC,
	InSystemdNspawn,
	OnHost,
}

// Platforms returns the closed set of platforms that classifications are
// drawn from.
func Platforms() []Platform {
	return slices.Clone(platforms)
}
