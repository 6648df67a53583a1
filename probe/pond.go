// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"os"
)

// Pond is the boundary through which probes sense their surroundings. It
// abstracts the few environmental primitives probes are allowed to consult,
// so that tests can place probes into arbitrary simulated surroundings
// instead of the process's real ones.
type Pond interface {
	// LookupEnv returns the value of the named environment variable and true
	// if the variable is present, otherwise "" and false.
	LookupEnv(name string) (string, bool)

	// PathExists returns true if the given path exists, regardless of
	// whether it is a file, directory, or something else. A missing path is
	// not an error; errors indicate that existence could not be determined
	// (for instance, due to lacking permissions on a parent directory).
	PathExists(path string) (bool, error)

	// ReadTextFile returns the contents of the given (small) text file.
	ReadTextFile(path string) (string, error)

	// LookupIPAddrs resolves the given host name to its IP addresses.
	LookupIPAddrs(ctx context.Context, host string) ([]net.IPAddr, error)
}

// System returns the [Pond] backed by the process's real surroundings, that
// is, the operating system's environment variables, file system, and name
// resolution.
func System() Pond { return systemPond{} }

// systemPond implements Pond on the local operating system.
type systemPond struct{}

func (systemPond) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (systemPond) PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (systemPond) ReadTextFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (systemPond) LookupIPAddrs(ctx context.Context, host string) ([]net.IPAddr, error) {
	return net.DefaultResolver.LookupIPAddr(ctx, host)
}
