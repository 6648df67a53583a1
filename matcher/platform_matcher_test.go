// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package matcher

import (
	"github.com/siemens/pondfinder/platform"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("matchers", func() {

	Context("HavePlatform", func() {

		It("doesn't accept anything other than string and GomegaMatcher when creating the matcher", func() {
			Expect(func() {
				_ = HavePlatform(42)
			}).To(PanicWith(ContainSubstring("argument must be string or GomegaMatcher")))
			Expect(func() {
				_ = HavePlatform("Podman")
			}).NotTo(Panic())
			Expect(func() {
				_ = HavePlatform(ContainSubstring("CRI-O"))
			}).NotTo(Panic())
		})

		It("requires an actual Platform or *Platform", func() {
			m := HavePlatform("Podman")
			p := platform.InPodman
			Expect(m.Match(p)).To(BeTrue())
			Expect(m.Match(&p)).To(BeTrue())
			Expect(HavePlatform("Podman").Match(platform.InLXC)).To(BeFalse())
			_, err := m.Match("Podman")
			Expect(err).To(HaveOccurred())
		})

		It("matches display names with matchers", func() {
			Expect(platform.KubernetesCRIO).To(HavePlatform(ContainSubstring("CRI-O")))
			Expect(platform.OnHost).To(HavePlatform("no container"))
		})

	})

	Context("BeCategorized", func() {

		It("matches the category/runtime pairing", func() {
			Expect(platform.KubernetesDocker).To(
				BeCategorized(platform.Kubernetes, platform.Docker))
			Expect(platform.InDocker).NotTo(
				BeCategorized(platform.Kubernetes, platform.Docker))
			p := platform.OnHost
			Expect(&p).To(BeCategorized(platform.Host, platform.NoRuntime))
		})

		It("requires an actual Platform or *Platform", func() {
			_, err := BeCategorized(platform.Host, platform.NoRuntime).Match(42)
			Expect(err).To(HaveOccurred())
		})

	})

})
