package rules

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/langdetect"
)

const familyTraining = "training"

// ModuleNameFormatRule validates training module file names against the
// configured naming convention. Disabled by default: it only makes sense
// for trees that hold training modules exclusively.
type ModuleNameFormatRule struct {
	check.BaseRule
}

// NewModuleNameFormatRule creates a new module name format rule.
func NewModuleNameFormatRule() *ModuleNameFormatRule {
	return &ModuleNameFormatRule{
		BaseRule: check.NewBaseRule(
			"module_name_format",
			"module-name-format",
			"Training module file names follow the naming convention",
			familyTraining,
			config.SeverityWarning,
			[]string{"training", "naming"},
		),
	}
}

// DefaultEnabled returns false; enable via config or --enable.
func (r *ModuleNameFormatRule) DefaultEnabled() bool {
	return false
}

// Apply reports file names that do not match the configured pattern.
func (r *ModuleNameFormatRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	pattern := ctx.Config.Training.ModuleNamePattern
	if pattern == "" || ctx.Doc.Path == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("module name pattern %q: %w", pattern, err)
	}

	base := filepath.Base(ctx.Doc.Path)
	if re.MatchString(base) {
		return nil, nil
	}
	return []check.Finding{
		check.NewFinding(r.ID(), 1,
			fmt.Sprintf("Module file name %q does not match the naming convention", base)).
			WithSuggestion(fmt.Sprintf("Rename the module to match %q", pattern)).
			Build(),
	}, nil
}

// TrainingSectionsRule checks that training modules contain the
// recommended sections.
type TrainingSectionsRule struct {
	check.BaseRule
}

// NewTrainingSectionsRule creates a new training sections rule.
func NewTrainingSectionsRule() *TrainingSectionsRule {
	return &TrainingSectionsRule{
		BaseRule: check.NewBaseRule(
			"training_sections",
			"training-sections",
			"Training modules contain the recommended sections",
			familyTraining,
			config.SeverityInfo,
			[]string{"training", "sections"},
		),
	}
}

// Apply reports each missing training section. Matching is a document-wide
// text search: section names appear in body text as often as in headings.
func (r *TrainingSectionsRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	content := lowerContent(ctx.Doc)

	var findings []check.Finding
	for _, section := range ctx.Config.Training.RequiredSections {
		if strings.Contains(content, strings.ToLower(section)) {
			continue
		}
		findings = append(findings, check.NewFinding(r.ID(), 1,
			fmt.Sprintf("Training module missing recommended section: %q", section)).
			WithSuggestion(fmt.Sprintf("Add a %q section for complete training coverage", section)).
			Build())
	}
	return findings, nil
}

// CodeBlockLanguageRule checks that code blocks declare a language.
type CodeBlockLanguageRule struct {
	check.BaseRule
}

// NewCodeBlockLanguageRule creates a new code block language rule.
func NewCodeBlockLanguageRule() *CodeBlockLanguageRule {
	return &CodeBlockLanguageRule{
		BaseRule: check.NewBaseRule(
			"code_block_language",
			"code-block-language",
			"Code blocks declare a language for syntax highlighting",
			familyTraining,
			config.SeverityInfo,
			[]string{"training", "code"},
		),
	}
}

// Apply reports untagged code blocks, suggesting a detected language.
func (r *CodeBlockLanguageRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	for _, block := range ctx.Doc.CodeBlocks {
		if block.Info != "" || block.ContentLines() == 0 {
			continue
		}
		lang := langdetect.Detect(blockContent(ctx, block.StartLine, block.EndLine))
		findings = append(findings, check.NewFinding(r.ID(), block.StartLine,
			"Code block has no language tag").
			WithSuggestion(fmt.Sprintf("Tag the block as %q", lang)).
			Build())
	}
	return findings, nil
}

// CodeBlockThemeRule checks that long code blocks use the configured
// highlighting theme.
type CodeBlockThemeRule struct {
	check.BaseRule
}

// NewCodeBlockThemeRule creates a new code block theme rule.
func NewCodeBlockThemeRule() *CodeBlockThemeRule {
	return &CodeBlockThemeRule{
		BaseRule: check.NewBaseRule(
			"code_block_theme",
			"code-block-theme",
			"Long code blocks use the standard highlighting theme",
			familyTraining,
			config.SeverityInfo,
			[]string{"training", "code"},
		),
	}
}

// Apply reports long code blocks whose raw text does not mention the
// configured theme.
func (r *CodeBlockThemeRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	theme := strings.ToLower(ctx.Config.Training.CodeBlockTheme)
	if theme == "" {
		return nil, nil
	}
	longBlock := ctx.Config.Training.LongBlockLines
	if longBlock <= 0 {
		longBlock = 10
	}
	longBlock = ctx.OptionInt("long_block_lines", longBlock)

	var findings []check.Finding
	for _, block := range ctx.Doc.CodeBlocks {
		if block.ContentLines() <= longBlock {
			continue
		}
		raw := strings.ToLower(string(blockContent(ctx, block.StartLine, block.EndLine)))
		if strings.Contains(raw, theme) {
			continue
		}
		findings = append(findings, check.NewFinding(r.ID(), block.StartLine,
			fmt.Sprintf("Long code block should use the %s theme", ctx.Config.Training.CodeBlockTheme)).
			WithSuggestion(fmt.Sprintf("Apply the %s theme to code blocks longer than %d lines",
				ctx.Config.Training.CodeBlockTheme, longBlock)).
			Build())
	}
	return findings, nil
}

// blockContent returns the raw text of the lines in [start, end].
func blockContent(ctx *check.RuleContext, start, end int) []byte {
	var b strings.Builder
	for line := start; line <= end; line++ {
		b.WriteString(ctx.Doc.LineText(line))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// CalloutBalanceRule flags documents that overuse warning callouts.
type CalloutBalanceRule struct {
	check.BaseRule
}

// NewCalloutBalanceRule creates a new callout balance rule.
func NewCalloutBalanceRule() *CalloutBalanceRule {
	return &CalloutBalanceRule{
		BaseRule: check.NewBaseRule(
			"callout_balance",
			"callout-balance",
			"Warnings are reserved for critical safety information",
			familyTraining,
			config.SeverityInfo,
			[]string{"training", "callouts"},
		),
	}
}

// Apply counts warning callouts plus textual "warning:" markers and
// reports once when the total exceeds the configured cap.
func (r *CalloutBalanceRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	limit := ctx.Config.Training.MaxWarningCallouts
	if limit <= 0 {
		limit = 5
	}
	limit = ctx.OptionInt("max_warnings", limit)

	count := 0
	for _, c := range ctx.Doc.Callouts {
		if c.Purpose == "warning" {
			count++
		}
	}
	eachProseLine(ctx.Doc, func(_ int, _, lower string) {
		count += strings.Count(lower, "warning:")
	})

	if count <= limit {
		return nil, nil
	}
	return []check.Finding{
		check.NewFinding(r.ID(), 1,
			fmt.Sprintf("High number of warnings (%d)", count)).
			WithSuggestion("Use warnings sparingly for critical safety information only").
			Build(),
	}, nil
}
