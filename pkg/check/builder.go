package check

import "github.com/yaklabco/docstyle/pkg/config"

// FindingBuilder helps construct Finding values.
type FindingBuilder struct {
	finding Finding
}

// NewFinding starts building a finding for the given rule at a line.
func NewFinding(ruleID string, line int, message string) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			RuleID:  ruleID,
			Message: message,
			Line:    line,
		},
	}
}

// WithSeverity sets the severity.
func (b *FindingBuilder) WithSeverity(s config.Severity) *FindingBuilder {
	b.finding.Severity = s
	return b
}

// WithSuggestion sets a human-readable suggestion.
func (b *FindingBuilder) WithSuggestion(s string) *FindingBuilder {
	b.finding.Suggestion = s
	return b
}

// WithFamily sets the rule family.
func (b *FindingBuilder) WithFamily(family string) *FindingBuilder {
	b.finding.Family = family
	return b
}

// WithPath sets the file path.
func (b *FindingBuilder) WithPath(path string) *FindingBuilder {
	b.finding.FilePath = path
	return b
}

// Build returns the constructed Finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
