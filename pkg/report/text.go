package report

import (
	"bufio"
	"fmt"

	"github.com/yaklabco/docstyle/internal/ui/pretty"
	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

// textRenderer writes findings grouped by severity, most severe first.
type textRenderer struct {
	opts   Options
	styles *pretty.Styles
}

func newTextRenderer(opts Options) *textRenderer {
	return &textRenderer{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Render writes the report as human-readable text.
func (t *textRenderer) Render(r *Report) error {
	w := bufio.NewWriterSize(t.opts.Writer, 64*1024)

	for _, sev := range []config.Severity{
		config.SeverityError,
		config.SeverityWarning,
		config.SeverityInfo,
	} {
		findings := r.BySeverity(sev)
		if len(findings) == 0 {
			continue
		}

		fmt.Fprintln(w, t.styles.FormatSectionTitle(sev, len(findings)))
		for _, f := range findings {
			line := t.styles.FormatFinding(f, true)
			if !t.opts.ShowSuggestions && f.HasSuggestion() {
				line = t.styles.FormatFinding(stripSuggestion(f), true)
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	for _, fe := range r.Errors {
		fmt.Fprintf(w, "%s %s: %s\n",
			t.styles.Failure.Render("ERROR"),
			fe.Path, fe.Message)
	}
	if len(r.Errors) > 0 {
		fmt.Fprintln(w)
	}

	if t.opts.ShowSummary {
		fmt.Fprintln(w, t.styles.FormatSummary(
			r.Counts[config.SeverityError],
			r.Counts[config.SeverityWarning],
			r.Counts[config.SeverityInfo],
			r.FilesChecked,
		))
	}

	return w.Flush()
}

func stripSuggestion(f check.Finding) check.Finding {
	f.Suggestion = ""
	return f
}
