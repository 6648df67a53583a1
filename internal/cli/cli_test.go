// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/siemens/pondfinder"
	"github.com/siemens/pondfinder/internal/test"
	"github.com/siemens/pondfinder/probe"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// execute runs the pondfinder command with the given arguments against the
// given finder, returning the command's stdout and stderr output together
// with its outcome.
func execute(ctx context.Context, finder *pondfinder.Finder, args ...string) (string, string, error) {
	var stdout, stderr strings.Builder
	cmd := New(finder)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{} // don't let cobra fall back onto os.Args
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

// podmanFinder returns a finder swimming in a simulated Podman pond.
func podmanFinder() *pondfinder.Finder {
	return pondfinder.New(pondfinder.WithPond(
		test.NewPond().SetEnv(probe.ContainerVar, "podman")))
}

var _ = Describe("pondfinder command", func() {

	BeforeEach(func() {
		test.LogToGinkgo()
		nocolor := color.NoColor
		color.NoColor = true
		DeferCleanup(func() { color.NoColor = nocolor })
	})

	Context("reporting the detected platform", func() {

		It("reports plain text by default", func(ctx context.Context) {
			stdout, _, err := execute(ctx, podmanFinder())
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(Equal("Podman\n"))
		})

		It("reports a containerless world", func(ctx context.Context) {
			finder := pondfinder.New(pondfinder.WithPond(test.NewPond()))
			stdout, _, err := execute(ctx, finder)
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(Equal("no container\n"))
		})

		It("reports JSON on request", func(ctx context.Context) {
			stdout, _, err := execute(ctx, podmanFinder(), "--output", "json")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(MatchJSON(
				`{"name": "Podman", "category": "standalone", "runtime": "podman"}`))
		})

		It("reports YAML on request", func(ctx context.Context) {
			stdout, _, err := execute(ctx, podmanFinder(), "-o", "yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(MatchYAML(
				"name: Podman\ncategory: standalone\nruntime: podman"))
		})

		It("rejects unknown report formats", func(ctx context.Context) {
			_, _, err := execute(ctx, podmanFinder(), "-o", "xml")
			Expect(err).To(MatchError(ContainSubstring(`unknown report format "xml"`)))
		})

		It("honors the report format from the environment", func(ctx context.Context) {
			Expect(os.Setenv("PONDFINDER_OUTPUT", JSONOutput)).To(Succeed())
			DeferCleanup(os.Unsetenv, "PONDFINDER_OUTPUT")
			stdout, _, err := execute(ctx, podmanFinder())
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(MatchJSON(
				`{"name": "Podman", "category": "standalone", "runtime": "podman"}`))

			By("still letting an explicit flag win over the environment")
			stdout, _, err = execute(ctx, podmanFinder(), "-o", TextOutput)
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(Equal("Podman\n"))
		})

	})

	Context("logging", func() {

		It("keeps quiet by default", func(ctx context.Context) {
			_, stderr, err := execute(ctx, podmanFinder())
			Expect(err).NotTo(HaveOccurred())
			Expect(stderr).To(BeEmpty())
		})

		It("traces the detection pass on debug", func(ctx context.Context) {
			_, stderr, err := execute(ctx, podmanFinder(), "--log-level", "debug")
			Expect(err).NotTo(HaveOccurred())
			Expect(stderr).To(ContainSubstring(`platform probe “podman”: evidence true`))
			Expect(stderr).To(ContainSubstring(`detected platform “Podman”`))
		})

		It("rejects unknown log levels", func(ctx context.Context) {
			_, _, err := execute(ctx, podmanFinder(), "--log-level", "noisy")
			Expect(err).To(MatchError(ContainSubstring(`unknown log level "noisy"`)))
		})

	})

	Context("versioning", func() {

		It("prints the build metadata", func(ctx context.Context) {
			stdout, _, err := execute(ctx, nil, "version")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(Equal("pondfinder dev (built unknown from Git SHA none)\n"))
		})

		It("supports the ubiquitous --version flag", func(ctx context.Context) {
			stdout, _, err := execute(ctx, nil, "--version")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(ContainSubstring("dev (built unknown from Git SHA none)"))
		})

	})

})
