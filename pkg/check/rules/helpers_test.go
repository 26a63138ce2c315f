package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/document"
)

// runRule applies a single rule to content with the default config,
// optionally mutated first.
func runRule(t *testing.T, rule check.Rule, path, content string, mutate func(*config.Config)) []check.Finding {
	t.Helper()

	cfg := config.NewConfig()
	if mutate != nil {
		mutate(cfg)
	}
	doc := document.Normalize(path, []byte(content))
	rc := check.NewRuleContext(context.Background(), doc, cfg, nil)

	findings, err := rule.Apply(rc)
	require.NoError(t, err)
	return findings
}

// applyRuleRaw applies a rule without asserting on the error, for rules
// whose internal failures are part of the test.
func applyRuleRaw(t *testing.T, rule check.Rule, path, content string, mutate func(*config.Config)) ([]check.Finding, error) {
	t.Helper()

	cfg := config.NewConfig()
	if mutate != nil {
		mutate(cfg)
	}
	doc := document.Normalize(path, []byte(content))
	rc := check.NewRuleContext(context.Background(), doc, cfg, nil)
	return rule.Apply(rc)
}

// lines returns the line numbers of the findings, in order.
func lines(findings []check.Finding) []int {
	var out []int
	for _, f := range findings {
		out = append(out, f.Line)
	}
	return out
}
