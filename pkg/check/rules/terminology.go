package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

const familyTerminology = "terminology"

// PreferredTermRule flags deprecated terms that have a configured
// replacement.
type PreferredTermRule struct {
	check.BaseRule
}

// NewPreferredTermRule creates a new preferred term rule.
func NewPreferredTermRule() *PreferredTermRule {
	return &PreferredTermRule{
		BaseRule: check.NewBaseRule(
			"preferred_term",
			"preferred-term",
			"Use the preferred form of product and technical terms",
			familyTerminology,
			config.SeverityWarning,
			[]string{"terminology"},
		),
	}
}

// Apply reports each deprecated term with its preferred replacement.
func (r *PreferredTermRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	preferred := ctx.Config.Terminology.Preferred
	terms := sortedKeys(preferred)

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, term := range terms {
			if containsWord(lower, strings.ToLower(term)) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Deprecated term %q found", term)).
					WithSuggestion(fmt.Sprintf("Use %q instead of %q", preferred[term], term)).
					Build())
			}
		}
	})
	return findings, nil
}

// VagueTermRule flags vague terms that deserve more specific language.
type VagueTermRule struct {
	check.BaseRule
}

// NewVagueTermRule creates a new vague term rule.
func NewVagueTermRule() *VagueTermRule {
	return &VagueTermRule{
		BaseRule: check.NewBaseRule(
			"vague_term",
			"vague-term",
			"Prefer specific language over vague terms",
			familyTerminology,
			config.SeverityInfo,
			[]string{"terminology", "clarity"},
		),
	}
}

// Apply reports vague terms found on prose lines.
func (r *VagueTermRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, term := range ctx.Config.Terminology.AvoidTerms {
			if containsWord(lower, strings.ToLower(term)) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Consider a more specific term than %q", term)).
					WithSuggestion("Use more specific language (e.g., \"IP address\" instead of \"IP\")").
					Build())
			}
		}
	})
	return findings, nil
}

// NegativeTermRule flags negative words that have softer alternatives.
type NegativeTermRule struct {
	check.BaseRule
}

// NewNegativeTermRule creates a new negative term rule.
func NewNegativeTermRule() *NegativeTermRule {
	return &NegativeTermRule{
		BaseRule: check.NewBaseRule(
			"negative_term",
			"negative-term",
			"Avoid negative terms; use neutral alternatives",
			familyTerminology,
			config.SeverityWarning,
			[]string{"terminology", "tone"},
		),
	}
}

// Apply reports negative terms with their configured alternatives.
func (r *NegativeTermRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	alternatives := ctx.Config.Terminology.NegativeTerms
	terms := sortedKeys(alternatives)

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, term := range terms {
			if containsWord(lower, term) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Negative term %q found", term)).
					WithSuggestion(fmt.Sprintf("Use %q instead of %q", alternatives[term], term)).
					Build())
			}
		}
	})
	return findings, nil
}

// InclusiveLanguageRule flags non-inclusive terms. These default to Error
// severity: they block commits.
type InclusiveLanguageRule struct {
	check.BaseRule
}

// NewInclusiveLanguageRule creates a new inclusive language rule.
func NewInclusiveLanguageRule() *InclusiveLanguageRule {
	return &InclusiveLanguageRule{
		BaseRule: check.NewBaseRule(
			"inclusive_language",
			"inclusive-language",
			"Use inclusive terminology",
			familyTerminology,
			config.SeverityError,
			[]string{"terminology", "inclusive"},
		),
	}
}

// Apply reports non-inclusive terms with their inclusive alternatives.
func (r *InclusiveLanguageRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	alternatives := ctx.Config.Terminology.NonInclusive
	terms := sortedKeys(alternatives)

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, term := range terms {
			// Compound terms like "master/slave" contain separators, so a
			// plain substring match is used for them.
			hit := containsWord(lower, term)
			if !hit && strings.ContainsAny(term, "/-") {
				hit = strings.Contains(lower, term)
			}
			if hit {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Non-inclusive term %q found", term)).
					WithSuggestion(fmt.Sprintf("Use %q instead", alternatives[term])).
					Build())
			}
		}
	})
	return findings, nil
}

// AnthropomorphismRule flags language that attributes human traits to
// systems.
type AnthropomorphismRule struct {
	check.BaseRule
}

// NewAnthropomorphismRule creates a new anthropomorphism rule.
func NewAnthropomorphismRule() *AnthropomorphismRule {
	return &AnthropomorphismRule{
		BaseRule: check.NewBaseRule(
			"anthropomorphism",
			"anthropomorphism",
			"Do not attribute human characteristics to systems",
			familyTerminology,
			config.SeverityWarning,
			[]string{"terminology", "tone"},
		),
	}
}

// Apply reports anthropomorphic phrases found on prose lines.
func (r *AnthropomorphismRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, phrase := range ctx.Config.Terminology.Anthropomorphic {
			if containsWord(lower, strings.ToLower(phrase)) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Anthropomorphic language: %q", phrase)).
					WithSuggestion("Describe the process or requirement instead of attributing intent to the system").
					Build())
			}
		}
	})
	return findings, nil
}

// ProperNameCaseRule flags product names written without their canonical
// capitalization.
type ProperNameCaseRule struct {
	check.BaseRule
}

// NewProperNameCaseRule creates a new proper name case rule.
func NewProperNameCaseRule() *ProperNameCaseRule {
	return &ProperNameCaseRule{
		BaseRule: check.NewBaseRule(
			"proper_name_case",
			"proper-name-case",
			"Product names must use their canonical capitalization",
			familyTerminology,
			config.SeverityInfo,
			[]string{"terminology", "names"},
		),
	}
}

// Apply reports lowercase occurrences of configured proper names.
func (r *ProperNameCaseRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, text, lower string) {
		for _, name := range ctx.Config.Terminology.ProperNames {
			lowerName := strings.ToLower(name)
			if containsWord(lower, lowerName) && !strings.Contains(text, name) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Found lowercase %q", lowerName)).
					WithSuggestion(fmt.Sprintf("Use %q when referring to the product", name)).
					Build())
			}
		}
	})
	return findings, nil
}

// NameConsistencyRule flags documents that mix canonical and lowercase
// forms of the same product name.
type NameConsistencyRule struct {
	check.BaseRule
}

// NewNameConsistencyRule creates a new name consistency rule.
func NewNameConsistencyRule() *NameConsistencyRule {
	return &NameConsistencyRule{
		BaseRule: check.NewBaseRule(
			"name_consistency",
			"name-consistency",
			"Product name capitalization must be consistent across the document",
			familyTerminology,
			config.SeverityWarning,
			[]string{"terminology", "names"},
		),
	}
}

// Apply reports one document-level finding per inconsistently-cased name.
func (r *NameConsistencyRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	content := string(ctx.Doc.Content)
	lower := strings.ToLower(content)

	var findings []check.Finding
	for _, name := range ctx.Config.Terminology.ProperNames {
		lowerName := strings.ToLower(name)
		total := countWord(lower, lowerName)
		canonical := countWord(content, name)
		mismatched := total - canonical
		if canonical > 0 && mismatched > 0 {
			findings = append(findings, check.NewFinding(r.ID(), 1,
				fmt.Sprintf("Mixed capitalization: %q (%d) and %q (%d)",
					lowerName, mismatched, name, canonical)).
				WithSuggestion(fmt.Sprintf("Use %q consistently", name)).
				Build())
		}
	}
	return findings, nil
}

// JargonDensityRule flags documents with a high density of complex terms.
type JargonDensityRule struct {
	check.BaseRule
}

// NewJargonDensityRule creates a new jargon density rule.
func NewJargonDensityRule() *JargonDensityRule {
	return &JargonDensityRule{
		BaseRule: check.NewBaseRule(
			"jargon_density",
			"jargon-density",
			"Limit the document-wide use of complex terms",
			familyTerminology,
			config.SeverityInfo,
			[]string{"terminology", "clarity"},
		),
	}
}

// Apply counts jargon terms across the whole document and reports once
// when the count exceeds the configured threshold.
func (r *JargonDensityRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	terms := ctx.Config.Terminology.JargonTerms
	if len(terms) == 0 {
		return nil, nil
	}
	threshold := ctx.Config.Terminology.JargonThreshold
	if threshold <= 0 {
		threshold = 10
	}
	threshold = ctx.OptionInt("threshold", threshold)

	content := lowerContent(ctx.Doc)
	count := 0
	for _, term := range terms {
		count += countWord(content, strings.ToLower(term))
	}
	if count <= threshold {
		return nil, nil
	}

	return []check.Finding{
		check.NewFinding(r.ID(), 1,
			fmt.Sprintf("High use of complex terms (%d instances)", count)).
			WithSuggestion("Use simpler language: \"use\" instead of \"utilize\", \"help\" instead of \"facilitate\"").
			Build(),
	}, nil
}
