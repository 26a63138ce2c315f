package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full emits the complete default rule data instead of the
	// minimal commented skeleton.
	Full bool
}

// GenerateTemplate creates a .styleguide.yaml template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# docstyle configuration
# See: https://github.com/yaklabco/docstyle

# Default severity for rules without an explicit override: error, warning, or info
# severity_default: warning

# Document structure checks
structure:
  required_sections:
    - Overview
  recommended_sections:
    - Prerequisites
    - Summary
  # Documents longer than this many lines should carry a table of contents
  toc_line_threshold: 50

# Terminology checks
terminology:
  non_inclusive:
    master/slave: primary/secondary
    blacklist: deny list
    whitelist: allow list
  negative_terms:
    bug: issue
    crash: failure

# Per-rule overrides, keyed by rule ID
# rules:
#   heading_case:
#     enabled: false
#   kb_reference_format:
#     severity: warning

# Glob patterns for files excluded from checking
# ignore:
#   - "drafts/**"
#   - "**/archive/*.xml"
`)

	return buf.Bytes()
}

// generateFullTemplate emits the complete built-in defaults as YAML.
func generateFullTemplate() ([]byte, error) {
	cfg := NewConfig()

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal defaults: %w", err)
	}

	header := `# docstyle configuration (full defaults)
# See: https://github.com/yaklabco/docstyle
# Every value below matches the built-in default; trim what you do not change.

`
	return append([]byte(header), content...), nil
}
