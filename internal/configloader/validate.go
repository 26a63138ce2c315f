package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.heading_case.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rule keys).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Validate checks a configuration for errors and warnings.
//
// Unknown rule keys are warnings, not errors: a config written for a newer
// release should not break an older binary.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.SeverityDefault != "" {
		if _, ok := config.ParseSeverity(cfg.SeverityDefault); !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "severity_default",
				Value:   cfg.SeverityDefault,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault),
			})
		}
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	if cfg.MinSeverity != "" && !cfg.MinSeverity.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "min_severity",
			Value:   cfg.MinSeverity,
			Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", cfg.MinSeverity),
		})
	}

	if cfg.FailOn != "" && !cfg.FailOn.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "fail_on",
			Value:   cfg.FailOn,
			Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", cfg.FailOn),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Content.KBMinDigits < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "content.kb_min_digits",
			Value:   cfg.Content.KBMinDigits,
			Message: "kb_min_digits must be >= 0",
		})
	}

	validateRules(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// ruleFamilies are the rule family names accepted as keys in the rules map.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ruleFamilies = map[string]bool{
	"structure":   true,
	"terminology": true,
	"grammar":     true,
	"content":     true,
	"formatting":  true,
	"training":    true,
}

// validateRules checks rule configurations for errors and warnings.
// Keys may be rule IDs, rule names, or family names.
func validateRules(cfg *config.Config, result *ValidationResult) {
	registry := check.DefaultRegistry

	for ruleID, ruleCfg := range cfg.Rules {
		if _, exists := registry.Get(ruleID); !exists && !ruleFamilies[ruleID] {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleID,
				Value:   ruleID,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleID),
			})
		}

		if ruleCfg.Severity != nil {
			if _, ok := config.ParseSeverity(*ruleCfg.Severity); !ok {
				result.Errors = append(result.Errors, ValidationError{
					Field:   "rules." + ruleID + ".severity",
					Value:   *ruleCfg.Severity,
					Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity),
				})
			}
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns.
		_, err := filepath.Match(strings.ReplaceAll(pattern, "**", "*"), "")
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
