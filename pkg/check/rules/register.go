package rules

import "github.com/yaklabco/docstyle/pkg/check"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *check.Registry) {
	// Structure rules
	registry.Register(NewRequiredSectionsRule())
	registry.Register(NewRecommendedSectionsRule())
	registry.Register(NewTOCRule())

	// Terminology rules
	registry.Register(NewPreferredTermRule())
	registry.Register(NewVagueTermRule())
	registry.Register(NewNegativeTermRule())
	registry.Register(NewInclusiveLanguageRule())
	registry.Register(NewAnthropomorphismRule())
	registry.Register(NewProperNameCaseRule())
	registry.Register(NewNameConsistencyRule())
	registry.Register(NewJargonDensityRule())

	// Grammar rules
	registry.Register(NewContractionsRule())
	registry.Register(NewPassiveVoiceRule())
	registry.Register(NewDirectAddressRule())
	registry.Register(NewHeadingCaseRule())
	registry.Register(NewAbilityNeutralRule())
	registry.Register(NewDescriptiveLinksRule())

	// Content rules
	registry.Register(NewKBReferenceFormatRule())
	registry.Register(NewKBReferenceLinkRule())
	registry.Register(NewVersionFormatRule())
	registry.Register(NewPIIIPAddressRule())
	registry.Register(NewPIIEmailRule())
	registry.Register(NewImageAltTextRule())

	// Formatting rules
	registry.Register(NewInlineStylesRule())
	registry.Register(NewQuoteStyleRule())
	registry.Register(NewListMarkerStyleRule())

	// Training rules
	registry.Register(NewModuleNameFormatRule())
	registry.Register(NewTrainingSectionsRule())
	registry.Register(NewCodeBlockLanguageRule())
	registry.Register(NewCodeBlockThemeRule())
	registry.Register(NewCalloutBalanceRule())
}

//nolint:gochecknoinits // Registration at init keeps rule wiring in one place
func init() {
	RegisterAll(check.DefaultRegistry)
}
