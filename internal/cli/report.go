// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/siemens/pondfinder/platform"

	"github.com/fatih/color"
	"sigs.k8s.io/yaml"
)

// Names of the report formats accepted by the “--output” flag.
const (
	TextOutput = "text"
	JSONOutput = "json"
	YAMLOutput = "yaml"
)

// report is a detected platform in serialization-friendly form. The YAML
// rendering reuses the JSON field tags.
type report struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Runtime  string `json:"runtime"`
}

// newReport flattens a platform into its report form.
func newReport(p platform.Platform) report {
	return report{
		Name:     p.String(),
		Category: p.Category().String(),
		Runtime:  p.Runtime().String(),
	}
}

// categoryColors styles the text report by platform category. Coloring
// automatically turns itself off when stdout isn't a terminal.
var categoryColors = map[platform.Category]*color.Color{
	platform.Host:       color.New(color.FgGreen),
	platform.Standalone: color.New(color.FgCyan),
	platform.Kubernetes: color.New(color.FgBlue),
}

// render writes the report for the detected platform in the requested
// format.
func render(w io.Writer, format string, p platform.Platform) error {
	switch format {
	case TextOutput:
		return renderText(w, p)
	case JSONOutput:
		return renderJSON(w, newReport(p))
	case YAMLOutput:
		return renderYAML(w, newReport(p))
	}
	return fmt.Errorf("unknown report format %q, expected one of %q, %q, or %q",
		format, TextOutput, JSONOutput, YAMLOutput)
}

func renderText(w io.Writer, p platform.Platform) error {
	c, ok := categoryColors[p.Category()]
	if !ok {
		c = color.New(color.Reset)
	}
	_, err := c.Fprintln(w, p.String())
	return err
}

func renderJSON(w io.Writer, r report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot render JSON report, reason: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderYAML(w io.Writer, r report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot render YAML report, reason: %w", err)
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}
