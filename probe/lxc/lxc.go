// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package lxc

import (
	"context"

	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	"github.com/thediveo/go-plugger/v3"
)

// Name of this platform probe plugin.
const Name = "lxc"

// Register this LXC platform probe plugin. This statically ensures that the
// Probe interface is fully implemented.
func init() {
	plugger.Group[probe.Probe]().Register(
		&Probe{}, plugger.WithPlugin(Name))
}

// Probe implements the probe.Probe interface.
type Probe struct{}

// Platform returns the standalone LXC platform.
func (p *Probe) Platform() platform.Platform { return platform.InLXC }

// Detect checks the “container” environment variable for the LXC claim.
func (p *Probe) Detect(_ context.Context, pond probe.Pond) (bool, error) {
	return probe.ContainerVarIs(pond, Name), nil
}
