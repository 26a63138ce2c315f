package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

// FormatSeverity renders a severity label with appropriate styling.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	label := strings.ToUpper(string(sev))
	switch sev {
	case config.SeverityError:
		return s.Error.Render(label)
	case config.SeverityWarning:
		return s.Warning.Render(label)
	default:
		return s.Info.Render(label)
	}
}

// FormatFileHeader renders a file path header for grouped output.
func (s *Styles) FormatFileHeader(path string) string {
	return s.FilePath.Render(path)
}

// FormatFinding renders a single finding.
//
// Layout:
//
//	path:12  WARNING  Heading should use sentence case  (heading_case)
//	         suggestion: How to configure the node
func (s *Styles) FormatFinding(f check.Finding, showPath bool) string {
	var b strings.Builder

	location := fmt.Sprintf("line %d", f.Line)
	if showPath && f.FilePath != "" {
		location = fmt.Sprintf("%s:%d", f.FilePath, f.Line)
	}

	b.WriteString(fmt.Sprintf("  %s  %s  %s  %s",
		s.Location.Render(location),
		s.FormatSeverity(f.Severity),
		s.Message.Render(f.Message),
		s.RuleID.Render("("+f.RuleID+")"),
	))

	if f.Suggestion != "" {
		b.WriteString("\n")
		b.WriteString(s.Suggestion.Render(fmt.Sprintf("      suggestion: %s", f.Suggestion)))
	}

	return b.String()
}

// FormatSectionTitle renders a severity section header with a count.
func (s *Styles) FormatSectionTitle(sev config.Severity, count int) string {
	noun := "finding"
	if count != 1 {
		noun = "findings"
	}
	title := fmt.Sprintf("%s (%d %s)", strings.ToUpper(string(sev)), count, noun)
	return s.SectionTitle.Render(title)
}

// FormatSummary renders the final summary line.
func (s *Styles) FormatSummary(errors, warnings, infos, files int) string {
	if errors == 0 && warnings == 0 && infos == 0 {
		return s.Success.Render(fmt.Sprintf("No findings in %d file(s)", files))
	}

	parts := make([]string, 0, 3)
	if errors > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d error(s)", errors)))
	}
	if warnings > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d warning(s)", warnings)))
	}
	if infos > 0 {
		parts = append(parts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	summary := strings.Join(parts, ", ")
	return s.Bold.Render("Found ") + summary + s.Bold.Render(fmt.Sprintf(" in %d file(s)", files))
}
