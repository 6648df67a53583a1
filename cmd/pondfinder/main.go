// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

// The pondfinder command detects the type of “pond” it is running in: a
// Kubernetes pod, a standalone container, or no container at all.
package main

import "github.com/siemens/pondfinder/internal/cli"

func main() {
	cli.Execute()
}
