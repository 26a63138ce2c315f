package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

const familyGrammar = "grammar"

// Grammar rules are heuristics, not a grammatical parse. False positives
// are an accepted tradeoff, so none of them defaults to Error severity.

// ContractionsRule flags contractions, which formal documentation spells
// out in full.
type ContractionsRule struct {
	check.BaseRule
}

// NewContractionsRule creates a new contractions rule.
func NewContractionsRule() *ContractionsRule {
	return &ContractionsRule{
		BaseRule: check.NewBaseRule(
			"avoid_contractions",
			"avoid-contractions",
			"Spell out contractions in full",
			familyGrammar,
			config.SeverityWarning,
			[]string{"grammar", "voice"},
		),
	}
}

// Apply reports contractions with their expanded forms.
func (r *ContractionsRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	expansions := ctx.Config.Grammar.Contractions
	terms := sortedKeys(expansions)

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, contraction := range terms {
			if strings.Contains(lower, contraction) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Contraction found: %q", contraction)).
					WithSuggestion(fmt.Sprintf("Use %q instead of %q", expansions[contraction], contraction)).
					Build())
			}
		}
	})
	return findings, nil
}

// PassiveVoiceRule flags common passive-voice constructions.
type PassiveVoiceRule struct {
	check.BaseRule
}

// NewPassiveVoiceRule creates a new passive voice rule.
func NewPassiveVoiceRule() *PassiveVoiceRule {
	return &PassiveVoiceRule{
		BaseRule: check.NewBaseRule(
			"passive_voice",
			"passive-voice",
			"Prefer active voice",
			familyGrammar,
			config.SeverityWarning,
			[]string{"grammar", "voice"},
		),
	}
}

// Apply reports passive-voice indicator phrases found on prose lines.
func (r *PassiveVoiceRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, indicator := range ctx.Config.Grammar.PassiveIndicators {
			if containsWord(lower, strings.ToLower(indicator)) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Passive voice detected: %q", indicator)).
					WithSuggestion("Rewrite in active voice so the subject performs the action").
					Build())
			}
		}
	})
	return findings, nil
}

// DirectAddressRule flags third-person references to the reader.
type DirectAddressRule struct {
	check.BaseRule
}

// NewDirectAddressRule creates a new direct address rule.
func NewDirectAddressRule() *DirectAddressRule {
	return &DirectAddressRule{
		BaseRule: check.NewBaseRule(
			"direct_address",
			"direct-address",
			"Address the reader directly as \"you\"",
			familyGrammar,
			config.SeverityInfo,
			[]string{"grammar", "voice"},
		),
	}
}

// Apply reports third-person reader references.
func (r *DirectAddressRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, ref := range ctx.Config.Grammar.ThirdPersonRefs {
			if containsWord(lower, strings.ToLower(ref)) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Third-person reference: %q", ref)).
					WithSuggestion("Use \"you\" to address the reader directly").
					Build())
			}
		}
	})
	return findings, nil
}

// HeadingCaseRule checks that headings use sentence case.
type HeadingCaseRule struct {
	check.BaseRule
}

// NewHeadingCaseRule creates a new heading case rule.
func NewHeadingCaseRule() *HeadingCaseRule {
	return &HeadingCaseRule{
		BaseRule: check.NewBaseRule(
			"heading_case",
			"heading-case",
			"Headings use sentence case, not title case",
			familyGrammar,
			config.SeverityWarning,
			[]string{"grammar", "headings"},
		),
	}
}

// Apply reports headings whose sentence-case form differs from the text,
// with the sentence-case form as the suggestion.
func (r *HeadingCaseRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	proper := ctx.Config.Terminology.ProperNames

	var findings []check.Finding
	for _, h := range ctx.Doc.Headings {
		normalized := strings.Join(strings.Fields(h.Text), " ")
		want := sentenceCase(normalized, proper)
		if want == normalized || normalized == "" {
			continue
		}
		findings = append(findings, check.NewFinding(r.ID(), h.Line,
			fmt.Sprintf("Heading is not sentence case: %q", h.Text)).
			WithSuggestion(want).
			Build())
	}
	return findings, nil
}

// sentenceCase lowercases every word after the first, keeping acronyms,
// configured proper names, and words containing digits untouched.
func sentenceCase(text string, properNames []string) string {
	words := strings.Fields(text)
	for i := 1; i < len(words); i++ {
		w := words[i]
		if keepCase(w, properNames) {
			continue
		}
		first, size := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(first) {
			words[i] = string(unicode.ToLower(first)) + w[size:]
		}
	}
	return strings.Join(words, " ")
}

func keepCase(word string, properNames []string) bool {
	trimmed := strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if trimmed == "" {
		return true
	}
	for _, name := range properNames {
		if trimmed == name {
			return true
		}
	}
	if strings.ContainsAny(trimmed, "0123456789") {
		return true
	}
	// Acronyms and mixed-case identifiers (DNS, iSCSI) stay as written.
	rest := trimmed[1:]
	return rest != strings.ToLower(rest)
}

// AbilityNeutralRule flags phrases that assume specific reader abilities.
type AbilityNeutralRule struct {
	check.BaseRule
}

// NewAbilityNeutralRule creates a new ability neutral rule.
func NewAbilityNeutralRule() *AbilityNeutralRule {
	return &AbilityNeutralRule{
		BaseRule: check.NewBaseRule(
			"ability_neutral",
			"ability-neutral",
			"Use ability-neutral language",
			familyGrammar,
			config.SeverityInfo,
			[]string{"grammar", "accessibility"},
		),
	}
}

// Apply reports ability-assuming phrases.
func (r *AbilityNeutralRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, _, lower string) {
		for _, term := range ctx.Config.Grammar.AbilityTerms {
			if containsWord(lower, strings.ToLower(term)) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Consider an ability-neutral alternative to %q", term)).
					WithSuggestion("Use language that does not assume specific abilities: \"the image shows\" instead of \"see the image\"").
					Build())
			}
		}
	})
	return findings, nil
}

// DescriptiveLinksRule flags non-descriptive link text.
type DescriptiveLinksRule struct {
	check.BaseRule
}

// NewDescriptiveLinksRule creates a new descriptive links rule.
func NewDescriptiveLinksRule() *DescriptiveLinksRule {
	return &DescriptiveLinksRule{
		BaseRule: check.NewBaseRule(
			"descriptive_links",
			"descriptive-links",
			"Link text must describe the destination",
			familyGrammar,
			config.SeverityWarning,
			[]string{"grammar", "accessibility", "links"},
		),
	}
}

// Apply reports link lines whose text matches a non-descriptive pattern.
func (r *DescriptiveLinksRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, text, lower string) {
		if !strings.Contains(lower, "<a") && !strings.Contains(lower, "href") &&
			!strings.Contains(text, "](") {
			return
		}
		for _, pattern := range ctx.Config.Grammar.LinkTextPatterns {
			if containsWord(lower, strings.ToLower(pattern)) {
				findings = append(findings, check.NewFinding(r.ID(), line,
					fmt.Sprintf("Non-descriptive link text: %q", pattern)).
					WithSuggestion("Use link text that explains what the link leads to").
					Build())
			}
		}
	})
	return findings, nil
}
