// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"

	"github.com/siemens/pondfinder/platform"
)

// Probe allows specialized platform probe plugins to interface with the
// generic platform detection mechanism, by gathering the evidence that is
// characteristic for one particular container platform.
type Probe interface {
	// Platform returns the platform that a positive finding of this probe
	// maps to on its own, that is, unless the detection policy combines it
	// with stronger evidence.
	Platform() platform.Platform

	// Detect senses the process's surroundings through the given pond,
	// returning true if evidence of this probe's platform was found. An
	// error signals that some evidence could not be gathered (such as an
	// unreadable file); errors never imply positive evidence.
	Detect(ctx context.Context, pond Pond) (bool, error)
}
