// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package pondfinder

import (
	"context"
	"time"

	"github.com/siemens/pondfinder/internal/test"
	"github.com/siemens/pondfinder/platform"

	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = Describe("default pond finder", func() {

	BeforeEach(test.LogToGinkgo)

	It("hands out one and the same process-wide Finder", func() {
		gomega.Expect(Default()).To(gomega.BeIdenticalTo(Default()))
	})

	It("detects and caches process-wide", NodeTimeout(30*time.Second), func(ctx context.Context) {
		where := Detect(ctx)
		gomega.Expect(platform.Platforms()).To(gomega.ContainElement(where))
		gomega.Expect(Detect(ctx)).To(gomega.Equal(where))
		ResetCache()
		gomega.Expect(Detect(ctx, WithRefresh())).To(gomega.Equal(where),
			"surroundings don't change between passes")
	})

})
