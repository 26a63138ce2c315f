// Package config defines core configuration types for docstyle.
// These types are pure data structures with no dependency on the YAML loader.
package config

// Severity represents the severity level of a style finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank returns the sort rank of a severity: errors sort first.
// Unknown severities rank after info.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// AtLeast reports whether s is at least as severe as threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s.Rank() <= threshold.Rank()
}

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// ParseSeverity converts a string to a Severity.
// Returns (severity, true) for known values, ("", false) otherwise.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(s) {
	case SeverityError:
		return SeverityError, true
	case SeverityWarning:
		return SeverityWarning, true
	case SeverityInfo:
		return SeverityInfo, true
	default:
		return "", false
	}
}

// RuleConfig holds per-rule configuration overrides.
// Pointer fields distinguish "unset" from explicit false/empty.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// StructureConfig configures document structure rules.
type StructureConfig struct {
	// RequiredSections are heading texts that must appear in every document.
	RequiredSections []string `yaml:"required_sections"`

	// RecommendedSections are heading texts that documents should have.
	RecommendedSections []string `yaml:"recommended_sections"`

	// TOCLineThreshold is the document length (in lines) above which a
	// missing table of contents is reported. 0 uses the default.
	TOCLineThreshold int `yaml:"toc_line_threshold"`
}

// TerminologyConfig configures terminology and word-choice rules.
type TerminologyConfig struct {
	// Preferred maps deprecated terms to their preferred replacements.
	Preferred map[string]string `yaml:"preferred"`

	// AvoidTerms are vague terms to flag for more specific language.
	AvoidTerms []string `yaml:"avoid_terms"`

	// NegativeTerms maps negative words to softer alternatives.
	NegativeTerms map[string]string `yaml:"negative_terms"`

	// NonInclusive maps non-inclusive terms to inclusive alternatives.
	NonInclusive map[string]string `yaml:"non_inclusive"`

	// Anthropomorphic are phrases attributing human traits to systems.
	Anthropomorphic []string `yaml:"anthropomorphic"`

	// ProperNames are product or tool names with canonical capitalization.
	ProperNames []string `yaml:"proper_names"`

	// JargonTerms are complexity indicators counted document-wide.
	JargonTerms []string `yaml:"jargon_terms"`

	// JargonThreshold is the document-wide jargon count that triggers a
	// finding. 0 uses the default.
	JargonThreshold int `yaml:"jargon_threshold"`
}

// GrammarConfig configures voice and grammar heuristics.
type GrammarConfig struct {
	// Contractions maps contractions to their expanded forms.
	Contractions map[string]string `yaml:"contractions"`

	// PassiveIndicators are auxiliary+participle phrases flagged as passive voice.
	PassiveIndicators []string `yaml:"passive_indicators"`

	// ThirdPersonRefs are phrases that should be replaced by direct address.
	ThirdPersonRefs []string `yaml:"third_person_refs"`

	// AbilityTerms are phrases that assume specific reader abilities.
	AbilityTerms []string `yaml:"ability_terms"`

	// LinkTextPatterns are non-descriptive link texts ("click here").
	LinkTextPatterns []string `yaml:"link_text_patterns"`
}

// ContentConfig configures technical content rules.
type ContentConfig struct {
	// KBMinDigits is the minimum digit count for a well-formed KB reference.
	KBMinDigits int `yaml:"kb_min_digits"`

	// RequireFullVersions flags two-part version numbers (X.Y) when true.
	RequireFullVersions bool `yaml:"require_full_versions"`

	// IPMaskMarker is the substring whose presence marks an IP as masked.
	IPMaskMarker string `yaml:"ip_mask_marker"`

	// AllowedEmailDomains are domains exempt from the email PII rule.
	AllowedEmailDomains []string `yaml:"allowed_email_domains"`
}

// FormattingConfig configures formatting rules.
type FormattingConfig struct {
	// DiscouragedInlineStyles are CSS property fragments flagged inside
	// style attributes.
	DiscouragedInlineStyles []string `yaml:"discouraged_inline_styles"`

	// FlagSmartQuotes reports curly/smart quotes when true.
	FlagSmartQuotes bool `yaml:"flag_smart_quotes"`

	// StepKeywords are leading words suggesting sequential steps; bulleted
	// list items starting with them should use a numbered list instead.
	StepKeywords []string `yaml:"step_keywords"`
}

// TrainingConfig configures training-module rules.
type TrainingConfig struct {
	// ModuleNamePattern is a regular expression module file names must match.
	ModuleNamePattern string `yaml:"module_name_pattern"`

	// RequiredSections are sections every training module should contain.
	RequiredSections []string `yaml:"required_sections"`

	// CodeBlockTheme is the syntax highlighting theme long code blocks
	// should declare.
	CodeBlockTheme string `yaml:"code_block_theme"`

	// LongBlockLines is the code block length above which the theme is
	// required. 0 uses the default.
	LongBlockLines int `yaml:"long_block_lines"`

	// MaxWarningCallouts is the count of warning callouts above which the
	// document is flagged. 0 uses the default.
	MaxWarningCallouts int `yaml:"max_warning_callouts"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid reports whether the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for docstyle.
type Config struct {
	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Rule family sections.
	Structure   StructureConfig   `yaml:"structure"`
	Terminology TerminologyConfig `yaml:"terminology"`
	Grammar     GrammarConfig     `yaml:"grammar"`
	Content     ContentConfig     `yaml:"content"`
	Formatting  FormattingConfig  `yaml:"formatting"`
	Training    TrainingConfig    `yaml:"training"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files excluded from checking.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// MinSeverity is the least severe level included in output.
	MinSeverity Severity `yaml:"-"`

	// FailOn is the severity threshold that produces a failing status.
	FailOn Severity `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with the built-in style guide defaults.
// The defaults mirror the published Tech-Pubs, KB, and training guidelines
// so that checking works out of the box without a .styleguide.yaml.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Structure: StructureConfig{
			RequiredSections:    []string{"Overview"},
			RecommendedSections: []string{"Prerequisites", "Summary"},
			TOCLineThreshold:    50,
		},
		Terminology: TerminologyConfig{
			Preferred: map[string]string{
				"e-mail":    "email",
				"data base": "database",
				"log-in":    "log in",
			},
			AvoidTerms: []string{"IP", "box", "machine"},
			NegativeTerms: map[string]string{
				"bug":   "issue",
				"crash": "failure",
				"panic": "halt",
				"stuck": "no progress",
			},
			NonInclusive: map[string]string{
				"master/slave": "primary/secondary",
				"blacklist":    "deny list",
				"whitelist":    "allow list",
			},
			Anthropomorphic: []string{
				"cluster thinks", "cluster needs", "cluster searches",
				"system wants", "software decides",
			},
			ProperNames:     []string{"Phoenix"},
			JargonTerms:     []string{"utilize", "facilitate", "comprehensive", "substantial"},
			JargonThreshold: 10,
		},
		Grammar: GrammarConfig{
			Contractions: map[string]string{
				"won't": "will not", "don't": "do not", "can't": "cannot",
				"shouldn't": "should not", "couldn't": "could not",
				"wouldn't": "would not", "isn't": "is not", "aren't": "are not",
			},
			PassiveIndicators: []string{
				"is set", "are set", "was set", "were set",
				"is monitored", "are monitored", "is performed", "are performed",
				"is created", "are created",
			},
			ThirdPersonRefs: []string{
				"the end user", "the user", "the customer",
				"users can", "customers can",
			},
			AbilityTerms: []string{
				"see the image", "look at", "as you can see", "obviously", "clearly",
			},
			LinkTextPatterns: []string{
				"click here", "read more", "see here", "this link",
			},
		},
		Content: ContentConfig{
			KBMinDigits:         4,
			RequireFullVersions: true,
			IPMaskMarker:        "x.x.x.",
			AllowedEmailDomains: []string{"example.com"},
		},
		Formatting: FormattingConfig{
			DiscouragedInlineStyles: []string{"font-family", "font-size", "color:"},
			FlagSmartQuotes:         true,
			StepKeywords:            []string{"first", "then", "next", "finally"},
		},
		Training: TrainingConfig{
			ModuleNamePattern:  `^[A-Z]{2,5}-\d{3}`,
			RequiredSections:   []string{"What You Will Learn", "Knowledge Check"},
			CodeBlockTheme:     "django",
			LongBlockLines:     10,
			MaxWarningCallouts: 5,
		},
		Rules:       make(map[string]RuleConfig),
		Ignore:      nil,
		Format:      FormatText,
		MinSeverity: SeverityInfo,
		FailOn:      SeverityError,
		Jobs:        0, // 0 means use GOMAXPROCS
	}
}

// EmptyConfig returns a Config with no rules configured.
// Used when configuration loading fails beyond repair: checking proceeds
// with whatever the rules' own defaults still allow.
func EmptyConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Format:          FormatText,
		MinSeverity:     SeverityInfo,
		FailOn:          SeverityError,
	}
}
