package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/document"
)

const familyStructure = "structure"

// RequiredSectionsRule checks that every configured required section is
// present in the document.
type RequiredSectionsRule struct {
	check.BaseRule
}

// NewRequiredSectionsRule creates a new required sections rule.
func NewRequiredSectionsRule() *RequiredSectionsRule {
	return &RequiredSectionsRule{
		BaseRule: check.NewBaseRule(
			"required_sections",
			"required-sections",
			"Documents must contain every required section",
			familyStructure,
			config.SeverityError,
			[]string{"structure", "sections"},
		),
	}
}

// Apply reports one finding per missing required section.
func (r *RequiredSectionsRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	for _, section := range ctx.Config.Structure.RequiredSections {
		if hasSection(ctx.Doc, section) {
			continue
		}
		findings = append(findings, check.NewFinding(r.ID(), 1,
			fmt.Sprintf("Missing required section: %q", section)).
			WithSuggestion(fmt.Sprintf("Add a %q section", section)).
			Build())
	}
	return findings, nil
}

// RecommendedSectionsRule suggests sections that documents usually benefit
// from having.
type RecommendedSectionsRule struct {
	check.BaseRule
}

// NewRecommendedSectionsRule creates a new recommended sections rule.
func NewRecommendedSectionsRule() *RecommendedSectionsRule {
	return &RecommendedSectionsRule{
		BaseRule: check.NewBaseRule(
			"recommended_sections",
			"recommended-sections",
			"Documents should contain the recommended sections",
			familyStructure,
			config.SeverityInfo,
			[]string{"structure", "sections"},
		),
	}
}

// Apply reports one finding per missing recommended section.
func (r *RecommendedSectionsRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	for _, section := range ctx.Config.Structure.RecommendedSections {
		if hasSection(ctx.Doc, section) {
			continue
		}
		findings = append(findings, check.NewFinding(r.ID(), 1,
			fmt.Sprintf("Consider adding a %q section", section)).
			WithSuggestion(fmt.Sprintf("Documents typically benefit from a %q section", section)).
			Build())
	}
	return findings, nil
}

// hasSection matches a section name against heading texts, case-insensitive
// and trimmed. Documents without any headings (plain text) fall back to a
// whole-content search so prose-only notes are not flooded with findings.
func hasSection(doc *document.Document, section string) bool {
	want := strings.ToLower(strings.TrimSpace(section))
	if want == "" {
		return true
	}
	if len(doc.Headings) == 0 {
		return strings.Contains(lowerContent(doc), want)
	}
	for _, h := range doc.Headings {
		if strings.Contains(strings.ToLower(h.Text), want) {
			return true
		}
	}
	return false
}

// TOCRule recommends a table of contents for long documents.
type TOCRule struct {
	check.BaseRule
}

// NewTOCRule creates a new table of contents rule.
func NewTOCRule() *TOCRule {
	return &TOCRule{
		BaseRule: check.NewBaseRule(
			"toc_recommended",
			"toc-recommended",
			"Long documents should have a table of contents",
			familyStructure,
			config.SeverityInfo,
			[]string{"structure", "toc"},
		),
	}
}

// Apply reports a finding when the document exceeds the line threshold and
// carries neither a TOC macro nor a table-of-contents mention.
func (r *TOCRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	threshold := ctx.Config.Structure.TOCLineThreshold
	if threshold <= 0 {
		threshold = 50
	}
	threshold = ctx.OptionInt("line_threshold", threshold)

	doc := ctx.Doc
	if doc.LineCount() <= threshold || doc.HasTOCMacro {
		return nil, nil
	}
	content := lowerContent(doc)
	if strings.Contains(content, "table of contents") || containsWord(content, "toc") {
		return nil, nil
	}

	return []check.Finding{
		check.NewFinding(r.ID(), 1,
			fmt.Sprintf("Long document (%d lines) without a table of contents", doc.LineCount())).
			WithSuggestion("Add a table of contents for documents with multiple sections").
			Build(),
	}, nil
}
