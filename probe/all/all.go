// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package all

import (
	_ "github.com/siemens/pondfinder/probe/containerd" // probe containerd
	_ "github.com/siemens/pondfinder/probe/crio"       // probe CRI-O
	_ "github.com/siemens/pondfinder/probe/kubernetes" // probe Kubernetes pods
	_ "github.com/siemens/pondfinder/probe/lxc"        // probe LXC
	_ "github.com/siemens/pondfinder/probe/moby"       // probe Docker
	_ "github.com/siemens/pondfinder/probe/nspawn"     // probe systemd-nspawn
	_ "github.com/siemens/pondfinder/probe/podman"     // probe Podman
	_ "github.com/siemens/pondfinder/probe/rkt"        // probe rkt
)
