package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/document"
)

const familyFormatting = "formatting"

// InlineStylesRule flags discouraged CSS inside style attributes.
type InlineStylesRule struct {
	check.BaseRule
}

// NewInlineStylesRule creates a new inline styles rule.
func NewInlineStylesRule() *InlineStylesRule {
	return &InlineStylesRule{
		BaseRule: check.NewBaseRule(
			"inline_styles",
			"inline-styles",
			"Avoid inline styles; use default formatting",
			familyFormatting,
			config.SeverityWarning,
			[]string{"formatting", "styles"},
		),
	}
}

// Apply reports discouraged style fragments. Tag-only lines are inspected
// too: the style attribute lives inside the tag.
func (r *InlineStylesRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	fragments := ctx.Config.Formatting.DiscouragedInlineStyles

	var findings []check.Finding
	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if ctx.Doc.InCode(line) {
			continue
		}
		text := ctx.Doc.LineText(line)
		if !strings.Contains(text, "style=") {
			continue
		}
		for _, fragment := range fragments {
			if strings.Contains(text, fragment) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Discouraged inline style found: %s", fragment)).
					WithSuggestion("Remove the inline style and use default formatting").
					Build())
			}
		}
	}
	return findings, nil
}

// QuoteStyleRule flags smart quotes where straight quotes are required.
type QuoteStyleRule struct {
	check.BaseRule
}

// NewQuoteStyleRule creates a new quote style rule.
func NewQuoteStyleRule() *QuoteStyleRule {
	return &QuoteStyleRule{
		BaseRule: check.NewBaseRule(
			"quote_style",
			"quote-style",
			"Use straight double quotes, not smart quotes",
			familyFormatting,
			config.SeverityInfo,
			[]string{"formatting", "quotes"},
		),
	}
}

var smartQuotes = []rune{'‘', '’', '“', '”'}

// Apply reports one finding per line containing smart quote characters.
func (r *QuoteStyleRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	if !ctx.Config.Formatting.FlagSmartQuotes {
		return nil, nil
	}

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, text, _ string) {
		if !strings.ContainsAny(text, string(smartQuotes)) {
			return
		}
		findings = append(findings, check.NewFinding(r.ID(), line,
			"Smart quote characters found").
			WithSuggestion("Replace curly quotes with straight double quotes").
			Build())
	})
	return findings, nil
}

// ListMarkerStyleRule suggests numbered lists for sequential steps.
type ListMarkerStyleRule struct {
	check.BaseRule
}

// NewListMarkerStyleRule creates a new list marker style rule.
func NewListMarkerStyleRule() *ListMarkerStyleRule {
	return &ListMarkerStyleRule{
		BaseRule: check.NewBaseRule(
			"list_marker_style",
			"list-marker-style",
			"Sequential steps use a numbered list",
			familyFormatting,
			config.SeverityInfo,
			[]string{"formatting", "lists"},
		),
	}
}

// Apply reports bulleted runs where two or more items open with a
// sequential-step keyword.
func (r *ListMarkerStyleRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	keywords := ctx.Config.Formatting.StepKeywords
	if len(keywords) == 0 {
		return nil, nil
	}

	var findings []check.Finding
	runStart, stepItems := 0, 0

	flush := func() {
		if stepItems >= 2 {
			findings = append(findings, check.NewFinding(r.ID(), runStart,
				"Bulleted list describes sequential steps").
				WithSuggestion("Use a numbered list for steps performed in order").
				Build())
		}
		runStart, stepItems = 0, 0
	}

	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		item, ok := bulletItemText(ctx.Doc, line)
		if !ok {
			flush()
			continue
		}
		if runStart == 0 {
			runStart = line
		}
		if startsWithAny(strings.ToLower(item), keywords) {
			stepItems++
		}
	}
	flush()
	return findings, nil
}

// bulletItemText extracts the text of a bulleted list item, covering both
// markdown markers and <li> tags.
func bulletItemText(doc *document.Document, line int) (string, bool) {
	if doc.InCode(line) {
		return "", false
	}
	text := strings.TrimSpace(doc.LineText(line))
	switch {
	case strings.HasPrefix(text, "- "):
		return text[2:], true
	case strings.HasPrefix(text, "* "):
		return text[2:], true
	case strings.HasPrefix(strings.ToLower(text), "<li>"):
		return strings.TrimSpace(stripTags(text)), true
	default:
		return "", false
	}
}

func stripTags(text string) string {
	var b strings.Builder
	depth := 0
	for _, r := range text {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func startsWithAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.HasPrefix(lower, kw+" ") || strings.HasPrefix(lower, kw+",") {
			return true
		}
	}
	return false
}
