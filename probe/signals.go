// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package probe

import (
	"errors"
	"io/fs"
	"strings"
)

const (
	// ContainerVar is the name of the environment variable that many
	// container runtimes set on a container's initial process to announce
	// themselves, following the [container interface] convention. The
	// variable normally only survives for the initial process, so it is a
	// reliable signal only where the probed process is (a child of) it.
	//
	// [container interface]: https://systemd.io/CONTAINER_INTERFACE/
	ContainerVar = "container"

	// ContainerEnvPath is the path of the container metadata file that
	// Podman and CRI-O place into a container's filesystem.
	ContainerEnvPath = "/run/.containerenv"
)

// ContainerVarIs returns true if the “container” environment variable is set
// to the given value, comparing case-insensitively.
func ContainerVarIs(pond Pond, value string) bool {
	v, ok := pond.LookupEnv(ContainerVar)
	return ok && strings.EqualFold(v, value)
}

// ContainerEnvContains returns true if the container metadata file at
// [ContainerEnvPath] exists and its contents mention the given needle,
// comparing case-insensitively. A missing metadata file simply is negative
// evidence and not an error.
func ContainerEnvContains(pond Pond, needle string) (bool, error) {
	content, err := pond.ReadTextFile(ContainerEnvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return strings.Contains(strings.ToLower(content), strings.ToLower(needle)), nil
}
