// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package crio

import (
	"context"

	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	"github.com/thediveo/go-plugger/v3"
)

// Name of this platform probe plugin.
const Name = "cri-o"

// envValue is what both the “container” environment variable and the
// container metadata file announce for CRI-O containers.
const envValue = "crio" // it's crio, not cri-o, or criod, ...

// Register this CRI-O platform probe plugin. This statically ensures that
// the Probe interface is fully implemented.
func init() {
	plugger.Group[probe.Probe]().Register(
		&Probe{}, plugger.WithPlugin(Name))
}

// Probe implements the probe.Probe interface. This is automatically
// type-checked by the previous plugin registration (Generics can be sweet,
// sometimes *snicker*).
type Probe struct{}

// Platform returns the standalone CRI-O platform; when the detection policy
// also sees Kubernetes evidence, it reinterprets a positive finding as
// “Kubernetes with CRI-O” instead.
func (p *Probe) Platform() platform.Platform { return platform.InCRIO }

// Detect checks the “container” environment variable for the CRI-O claim,
// falling back to the container metadata file that CRI-O writes in the same
// way Podman does.
func (p *Probe) Detect(_ context.Context, pond probe.Pond) (bool, error) {
	if probe.ContainerVarIs(pond, envValue) {
		return true, nil
	}
	return probe.ContainerEnvContains(pond, envValue)
}
