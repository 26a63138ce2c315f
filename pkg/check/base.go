package check

import "github.com/yaklabco/docstyle/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id       string          // Unique identifier (e.g., "heading_case")
	name     string          // Human-readable name
	desc     string          // Detailed description
	family   string          // Rule family
	severity config.Severity // Default severity
	tags     []string        // Categorization tags
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc, family string, severity config.Severity, tags []string) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		family:   family,
		severity: severity,
		tags:     tags,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Family returns the rule family this rule belongs to.
func (r *BaseRule) Family() string {
	return r.family
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no findings.
func (r *BaseRule) Apply(_ *RuleContext) ([]Finding, error) {
	return nil, nil
}
