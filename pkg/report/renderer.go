package report

import (
	"fmt"

	"github.com/yaklabco/docstyle/pkg/config"
)

// Renderer writes a Report in a specific output format.
type Renderer interface {
	// Render writes the report to the configured writer.
	Render(r *Report) error
}

// NewRenderer creates a renderer for the given options.
func NewRenderer(opts Options) (Renderer, error) {
	opts = opts.normalize()

	switch opts.Format {
	case config.FormatText:
		return newTextRenderer(opts), nil
	case config.FormatJSON:
		return newJSONRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", opts.Format)
	}
}
