// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package pondfinder

import (
	"context"
	"sync"

	"github.com/siemens/pondfinder/platform"
)

var (
	defaultOnce   sync.Once
	defaultFinder *Finder
)

// Default returns the process-wide shared Finder, creating it on first use.
// All callers of the package-level [Detect] share this Finder and thus its
// single classification cache slot.
func Default() *Finder {
	defaultOnce.Do(func() {
		defaultFinder = New()
	})
	return defaultFinder
}

// Detect returns the platform the current process lives in, using the
// process-wide shared Finder; see [Finder.Detect] for details. As processes
// hardly ever migrate between platforms mid-flight, the shared Finder's
// cached classification normally is all that's ever needed:
//
//	if pondfinder.Detect(ctx).Category() == platform.Kubernetes {
//		...
//	}
func Detect(ctx context.Context, opts ...DetectOption) platform.Platform {
	return Default().Detect(ctx, opts...)
}

// ResetCache forgets the platform classification cached by the process-wide
// shared Finder, if any; see [Finder.ResetCache] for details.
func ResetCache() {
	Default().ResetCache()
}
