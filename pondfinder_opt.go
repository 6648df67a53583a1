// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package pondfinder

import (
	"time"

	"github.com/siemens/pondfinder/probe"
)

// NewOption represents options to New when creating a new pond finder.
type NewOption func(*Finder)

// WithCacheTTL sets for how long a Finder considers a platform
// classification to still be fresh, serving it without any renewed probing.
// A TTL of zero or less disables caching, so every Detect call then runs a
// full detection pass. Without this option, Finders use [DefaultCacheTTL].
func WithCacheTTL(d time.Duration) NewOption {
	return func(f *Finder) {
		f.ttl = d
	}
}

// WithPond sets the surroundings the Finder's probes sense, instead of the
// process's real surroundings as per [probe.System]. This is mostly useful
// for placing a Finder into simulated surroundings in tests.
func WithPond(pond probe.Pond) NewOption {
	return func(f *Finder) {
		f.pond = pond
	}
}

// DetectOption represents options to individual [Finder.Detect] calls.
type DetectOption func(*detectOpts)

type detectOpts struct {
	refresh bool
}

// WithRefresh makes a Detect call ignore any cached platform classification,
// however fresh, and run a full detection pass instead. The pass's outcome
// replaces the previously cached classification as usual.
func WithRefresh() DetectOption {
	return func(o *detectOpts) {
		o.refresh = true
	}
}
