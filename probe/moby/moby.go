// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package moby

import (
	"context"

	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	"github.com/thediveo/go-plugger/v3"
)

const (
	// Name of the primary Docker platform probe plugin, going for the
	// engine's marker file.
	Name = "docker"
	// EnvName of the secondary Docker platform probe plugin, going for the
	// much weaker “container” environment variable signal only. It is kept
	// separate from the primary probe so the detection policy can rank it
	// far down, as several runtimes claim to be “docker” there.
	EnvName = "docker-env"
)

// MarkerPath is the well-known marker file the Docker engine places into the
// root of every container's filesystem.
const MarkerPath = "/.dockerenv"

// envValue is what the “container” environment variable is set to in
// Docker containers (and in several Docker-compatible runtimes, too).
const envValue = "docker"

// Register the Docker platform probe plugins. This statically ensures that
// the Probe interface is fully implemented.
func init() {
	plugger.Group[probe.Probe]().Register(
		&Probe{}, plugger.WithPlugin(Name))
	plugger.Group[probe.Probe]().Register(
		&EnvProbe{}, plugger.WithPlugin(EnvName))
}

// Probe implements the probe.Probe interface, detecting Docker containers by
// the engine's marker file.
type Probe struct{}

// Platform returns the standalone Docker platform.
func (p *Probe) Platform() platform.Platform { return platform.InDocker }

// Detect checks for the Docker engine's marker file.
func (p *Probe) Detect(_ context.Context, pond probe.Pond) (bool, error) {
	return pond.PathExists(MarkerPath)
}

// EnvProbe implements the probe.Probe interface, detecting Docker containers
// by the “container” environment variable only.
type EnvProbe struct{}

// Platform returns the standalone Docker platform.
func (p *EnvProbe) Platform() platform.Platform { return platform.InDocker }

// Detect checks the “container” environment variable for the Docker claim.
func (p *EnvProbe) Detect(_ context.Context, pond probe.Pond) (bool, error) {
	return probe.ContainerVarIs(pond, envValue), nil
}
