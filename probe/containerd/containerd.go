// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package containerd

import (
	"context"

	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	"github.com/thediveo/go-plugger/v3"
)

// Name of this platform probe plugin.
const Name = "containerd"

// Register this containerd platform probe plugin. This statically ensures
// that the Probe interface is fully implemented.
func init() {
	plugger.Group[probe.Probe]().Register(
		&Probe{}, plugger.WithPlugin(Name))
}

// Probe implements the probe.Probe interface.
type Probe struct{}

// Platform returns the standalone containerd platform.
func (p *Probe) Platform() platform.Platform { return platform.InContainerd }

// Detect checks the “container” environment variable for the containerd
// claim; containerd leaves no marker files behind, so this is the only
// signal there is.
func (p *Probe) Detect(_ context.Context, pond probe.Pond) (bool, error) {
	return probe.ContainerVarIs(pond, Name), nil
}
