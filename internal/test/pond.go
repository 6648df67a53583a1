// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package test

import (
	"context"
	"io/fs"
	"net"
	"sync"
)

// Pond simulates the surroundings a probe senses, implementing the
// probe.Pond interface on top of purely in-memory state. This allows tests
// to place probes into arbitrary environments, including such environments
// that cannot be faked through the real file system, like the well-known
// absolute marker paths in “/” and “/run”.
//
// The zero Pond is an empty world: no environment variables, no paths, and
// no resolvable host names. Populate it using the chainable Set/Add/Write
// methods:
//
//	pond := test.NewPond().
//		SetEnv("container", "podman").
//		WriteFile("/run/.containerenv", "...")
//
// Pond additionally counts every single sensing call, so tests can assert
// that cached classifications don't cause any renewed probing.
type Pond struct {
	mu       sync.Mutex
	calls    int
	env      map[string]string
	paths    map[string]error // nil error: path exists
	files    map[string]string
	fileerrs map[string]error
	hosts    map[string][]net.IPAddr
	hosterrs map[string]error
}

// NewPond returns a new and completely empty simulated environment.
func NewPond() *Pond {
	return &Pond{
		env:      map[string]string{},
		paths:    map[string]error{},
		files:    map[string]string{},
		fileerrs: map[string]error{},
		hosts:    map[string][]net.IPAddr{},
		hosterrs: map[string]error{},
	}
}

// SetEnv sets an environment variable.
func (p *Pond) SetEnv(name, value string) *Pond {
	p.env[name] = value
	return p
}

// AddPath makes a path exist, without giving it any readable contents.
func (p *Pond) AddPath(path string) *Pond {
	p.paths[path] = nil
	return p
}

// FailPath makes existence checks for a path fail with the given error.
func (p *Pond) FailPath(path string, err error) *Pond {
	p.paths[path] = err
	return p
}

// WriteFile makes a path exist with the given contents.
func (p *Pond) WriteFile(path, content string) *Pond {
	p.files[path] = content
	return p
}

// FailFile makes a path exist, but reading it fail with the given error.
func (p *Pond) FailFile(path string, err error) *Pond {
	p.paths[path] = nil
	p.fileerrs[path] = err
	return p
}

// AddHost makes a host name resolve to the given IP addresses.
func (p *Pond) AddHost(host string, addrs ...net.IPAddr) *Pond {
	p.hosts[host] = addrs
	return p
}

// FailHost makes resolving a host name fail with the given error, instead
// of the usual “no such host”.
func (p *Pond) FailHost(host string, err error) *Pond {
	p.hosterrs[host] = err
	return p
}

// Calls returns the number of sensing calls made through this pond so far.
func (p *Pond) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// LookupEnv implements probe.Pond.
func (p *Pond) LookupEnv(name string) (string, bool) {
	p.count()
	value, ok := p.env[name]
	return value, ok
}

// PathExists implements probe.Pond.
func (p *Pond) PathExists(path string) (bool, error) {
	p.count()
	if err, ok := p.paths[path]; ok {
		return err == nil, err
	}
	_, ok := p.files[path]
	return ok, nil
}

// ReadTextFile implements probe.Pond.
func (p *Pond) ReadTextFile(path string) (string, error) {
	p.count()
	if err, ok := p.fileerrs[path]; ok {
		return "", err
	}
	if content, ok := p.files[path]; ok {
		return content, nil
	}
	return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

// LookupIPAddrs implements probe.Pond.
func (p *Pond) LookupIPAddrs(_ context.Context, host string) ([]net.IPAddr, error) {
	p.count()
	if err, ok := p.hosterrs[host]; ok {
		return nil, err
	}
	if addrs, ok := p.hosts[host]; ok {
		return addrs, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

func (p *Pond) count() {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
}
