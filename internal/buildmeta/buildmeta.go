// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

// Package buildmeta holds the build-time version information of the
// pondfinder command, injected via ldflags:
//
//	go build -ldflags="-X github.com/siemens/pondfinder/internal/buildmeta.Version=v1.0.0 ..."
package buildmeta

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the Git SHA the build was made from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
