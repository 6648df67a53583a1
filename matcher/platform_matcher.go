// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package matcher

import (
	"fmt"

	"github.com/siemens/pondfinder/platform"

	g "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// HavePlatform succeeds if ACTUAL is either a platform.Platform or
// *platform.Platform with the specified display name. Alternatively of a
// display name string, a GomegaMatcher can also be specified for matching
// the display name, such as ContainSubstring and MatchRegexp.
func HavePlatform(nameormatcher interface{}) types.GomegaMatcher {
	var namematcher types.GomegaMatcher
	switch nameormatcher := nameormatcher.(type) {
	case string:
		namematcher = g.Equal(nameormatcher)
	case types.GomegaMatcher:
		namematcher = nameormatcher
	default:
		panic("nameormatcher argument must be string or GomegaMatcher")
	}
	return g.WithTransform(func(actual interface{}) (string, error) {
		switch p := actual.(type) {
		case platform.Platform:
			return p.String(), nil
		case *platform.Platform:
			return p.String(), nil
		}
		return "", fmt.Errorf("HavePlatform expects a platform.Platform or *platform.Platform, but got %T", actual)
	}, namematcher)
}

// BeCategorized succeeds if ACTUAL is either a platform.Platform or
// *platform.Platform pairing the specified category with the specified
// runtime.
func BeCategorized(category platform.Category, runtime platform.Runtime) types.GomegaMatcher {
	return g.WithTransform(func(actual interface{}) (platform.Platform, error) {
		switch p := actual.(type) {
		case platform.Platform:
			return p, nil
		case *platform.Platform:
			return *p, nil
		}
		return platform.Platform{}, fmt.Errorf("BeCategorized expects a platform.Platform or *platform.Platform, but got %T", actual)
	}, g.SatisfyAll(
		g.WithTransform(func(p platform.Platform) platform.Category { return p.Category() }, g.Equal(category)),
		g.WithTransform(func(p platform.Platform) platform.Runtime { return p.Runtime() }, g.Equal(runtime)),
	))
}
