// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package podman

import (
	"context"

	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	"github.com/thediveo/go-plugger/v3"
)

// Name of this platform probe plugin.
const Name = "podman"

// envValue is what both the “container” environment variable and the
// container metadata file announce for Podman containers.
const envValue = "podman"

// Register this Podman platform probe plugin. This statically ensures that
// the Probe interface is fully implemented.
func init() {
	plugger.Group[probe.Probe]().Register(
		&Probe{}, plugger.WithPlugin(Name))
}

// Probe implements the probe.Probe interface.
type Probe struct{}

// Platform returns the standalone Podman platform.
func (p *Probe) Platform() platform.Platform { return platform.InPodman }

// Detect checks the “container” environment variable for the Podman claim,
// falling back to the container metadata file that Podman writes.
func (p *Probe) Detect(_ context.Context, pond probe.Pond) (bool, error) {
	if probe.ContainerVarIs(pond, envValue) {
		return true, nil
	}
	return probe.ContainerEnvContains(pond, envValue)
}
