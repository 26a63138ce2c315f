package report

import (
	"io"
	"os"

	"github.com/yaklabco/docstyle/pkg/config"
)

// Options configures report rendering.
type Options struct {
	// Writer receives the rendered report. Defaults to os.Stdout.
	Writer io.Writer

	// Format selects the renderer. Defaults to text.
	Format config.OutputFormat

	// Color controls colored output: "auto", "always", or "never".
	Color string

	// ShowSummary appends a summary line after the findings.
	ShowSummary bool

	// ShowSuggestions includes suggestions in text output.
	ShowSuggestions bool
}

// DefaultOptions returns options for human-readable terminal output.
func DefaultOptions() Options {
	return Options{
		Writer:          os.Stdout,
		Format:          config.FormatText,
		Color:           "auto",
		ShowSummary:     true,
		ShowSuggestions: true,
	}
}

// normalize fills zero values with defaults.
func (o Options) normalize() Options {
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	if o.Format == "" {
		o.Format = config.FormatText
	}
	if o.Color == "" {
		o.Color = "auto"
	}
	return o
}
