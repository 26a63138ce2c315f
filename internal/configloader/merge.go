package configloader

import "github.com/yaklabco/docstyle/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.SeverityDefault != "" {
		result.SeverityDefault = override.SeverityDefault
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.MinSeverity != "" {
		result.MinSeverity = override.MinSeverity
	}
	if override.FailOn != "" {
		result.FailOn = override.FailOn
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	mergeStructure(&result.Structure, override.Structure)
	mergeTerminology(&result.Terminology, override.Terminology)
	mergeGrammar(&result.Grammar, override.Grammar)
	mergeContent(&result.Content, override.Content)
	mergeFormatting(&result.Formatting, override.Formatting)
	mergeTraining(&result.Training, override.Training)

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.EnableRules != nil {
		result.EnableRules = override.EnableRules
	}
	if override.DisableRules != nil {
		result.DisableRules = override.DisableRules
	}

	return &result
}

func mergeStructure(dst *config.StructureConfig, src config.StructureConfig) {
	if src.RequiredSections != nil {
		dst.RequiredSections = src.RequiredSections
	}
	if src.RecommendedSections != nil {
		dst.RecommendedSections = src.RecommendedSections
	}
	if src.TOCLineThreshold != 0 {
		dst.TOCLineThreshold = src.TOCLineThreshold
	}
}

func mergeTerminology(dst *config.TerminologyConfig, src config.TerminologyConfig) {
	dst.Preferred = mergeStringMap(dst.Preferred, src.Preferred)
	dst.NegativeTerms = mergeStringMap(dst.NegativeTerms, src.NegativeTerms)
	dst.NonInclusive = mergeStringMap(dst.NonInclusive, src.NonInclusive)
	if src.AvoidTerms != nil {
		dst.AvoidTerms = src.AvoidTerms
	}
	if src.Anthropomorphic != nil {
		dst.Anthropomorphic = src.Anthropomorphic
	}
	if src.ProperNames != nil {
		dst.ProperNames = src.ProperNames
	}
	if src.JargonTerms != nil {
		dst.JargonTerms = src.JargonTerms
	}
	if src.JargonThreshold != 0 {
		dst.JargonThreshold = src.JargonThreshold
	}
}

func mergeGrammar(dst *config.GrammarConfig, src config.GrammarConfig) {
	dst.Contractions = mergeStringMap(dst.Contractions, src.Contractions)
	if src.PassiveIndicators != nil {
		dst.PassiveIndicators = src.PassiveIndicators
	}
	if src.ThirdPersonRefs != nil {
		dst.ThirdPersonRefs = src.ThirdPersonRefs
	}
	if src.AbilityTerms != nil {
		dst.AbilityTerms = src.AbilityTerms
	}
	if src.LinkTextPatterns != nil {
		dst.LinkTextPatterns = src.LinkTextPatterns
	}
}

func mergeContent(dst *config.ContentConfig, src config.ContentConfig) {
	if src.KBMinDigits != 0 {
		dst.KBMinDigits = src.KBMinDigits
	}
	if src.RequireFullVersions {
		dst.RequireFullVersions = src.RequireFullVersions
	}
	if src.IPMaskMarker != "" {
		dst.IPMaskMarker = src.IPMaskMarker
	}
	if src.AllowedEmailDomains != nil {
		dst.AllowedEmailDomains = src.AllowedEmailDomains
	}
}

func mergeFormatting(dst *config.FormattingConfig, src config.FormattingConfig) {
	if src.DiscouragedInlineStyles != nil {
		dst.DiscouragedInlineStyles = src.DiscouragedInlineStyles
	}
	if src.FlagSmartQuotes {
		dst.FlagSmartQuotes = src.FlagSmartQuotes
	}
	if src.StepKeywords != nil {
		dst.StepKeywords = src.StepKeywords
	}
}

func mergeTraining(dst *config.TrainingConfig, src config.TrainingConfig) {
	if src.ModuleNamePattern != "" {
		dst.ModuleNamePattern = src.ModuleNamePattern
	}
	if src.RequiredSections != nil {
		dst.RequiredSections = src.RequiredSections
	}
	if src.CodeBlockTheme != "" {
		dst.CodeBlockTheme = src.CodeBlockTheme
	}
	if src.LongBlockLines != 0 {
		dst.LongBlockLines = src.LongBlockLines
	}
	if src.MaxWarningCallouts != 0 {
		dst.MaxWarningCallouts = src.MaxWarningCallouts
	}
}

// mergeStringMap deep merges string maps with override precedence.
func mergeStringMap(base, override map[string]string) map[string]string {
	if override == nil {
		return base
	}
	if base == nil {
		result := make(map[string]string, len(override))
		for key, val := range override {
			result[key] = val
		}
		return result
	}

	result := make(map[string]string, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		result[key] = val
	}
	return result
}

// mergeRules performs deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		result := make(map[string]config.RuleConfig, len(override))
		for key, val := range override {
			result[key] = val
		}
		return result
	}
	if override == nil {
		result := make(map[string]config.RuleConfig, len(base))
		for key, val := range base {
			result[key] = val
		}
		return result
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))

	for key, val := range base {
		result[key] = val
	}

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
	}

	if override.Options != nil {
		if result.Options == nil {
			result.Options = make(map[string]any)
		}
		for key, val := range override.Options {
			result.Options[key] = val
		}
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
