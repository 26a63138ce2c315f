// Package check provides the rule engine, findings, and registry for docstyle.
package check

import (
	"github.com/yaklabco/docstyle/pkg/config"
)

// Finding represents a single style issue found in a document.
type Finding struct {
	// RuleID is the identifier of the rule that produced this finding.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "heading-case").
	RuleName string

	// Family is the rule family ("structure", "terminology", "grammar",
	// "content", "formatting", "training").
	Family string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the finding.
	Severity config.Severity

	// FilePath is the path to the document containing the issue.
	// Empty for pasted content.
	FilePath string

	// Line is the 1-based line number in the raw input. Document-level
	// findings use line 1.
	Line int

	// Suggestion is an optional replacement or rewording hint.
	Suggestion string
}

// HasSuggestion returns true if this finding carries a suggestion.
func (f *Finding) HasSuggestion() bool {
	return f.Suggestion != ""
}

// Rule defines the interface that all style rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "heading_case").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Family returns the rule family this rule belongs to.
	Family() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule.
	Tags() []string

	// Apply executes the rule against the given context and returns findings.
	//
	// Rules must:
	//   - Return findings for each violation found.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Finding, error)
}
