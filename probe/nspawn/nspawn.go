// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package nspawn

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/siemens/pondfinder/platform"
	"github.com/siemens/pondfinder/probe"

	"github.com/thediveo/go-plugger/v3"
)

// Name of this platform probe plugin.
const Name = "systemd-nspawn"

// ManagerPath is the file through which newer systemd versions announce the
// container manager to a container's payload, as per systemd's [container
// interface] convention.
//
// [container interface]: https://systemd.io/CONTAINER_INTERFACE/
const ManagerPath = "/run/host/container-manager"

// Register this systemd-nspawn platform probe plugin. This statically
// ensures that the Probe interface is fully implemented.
func init() {
	plugger.Group[probe.Probe]().Register(
		&Probe{}, plugger.WithPlugin(Name))
}

// Probe implements the probe.Probe interface.
type Probe struct{}

// Platform returns the standalone systemd-nspawn platform.
func (p *Probe) Platform() platform.Platform { return platform.InSystemdNspawn }

// Detect checks the “container” environment variable for the nspawn claim,
// falling back to the container manager file that newer systemd versions
// mount into “/run/host”.
func (p *Probe) Detect(_ context.Context, pond probe.Pond) (bool, error) {
	if probe.ContainerVarIs(pond, Name) {
		return true, nil
	}
	manager, err := pond.ReadTextFile(ManagerPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(manager), Name), nil
}
