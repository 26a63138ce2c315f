package check

import "github.com/yaklabco/docstyle/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for findings from this rule.
	Severity config.Severity

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules with their resolved configuration.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
// Precedence: rule defaults, then per-rule config, then CLI enable/disable.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		Config:   nil,
	}

	if cfg == nil {
		return rr
	}

	// Apply rule-specific config. Keys may be rule IDs or family names.
	if ruleCfg, ok := cfg.Rules[rule.Family()]; ok {
		applyRuleConfig(&rr, ruleCfg)
	}
	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		applyRuleConfig(&rr, ruleCfg)
	}

	// CLI enable/disable overrides config.
	for _, key := range cfg.EnableRules {
		if key == rule.ID() || key == rule.Family() {
			rr.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableRules {
		if key == rule.ID() || key == rule.Family() {
			rr.Enabled = false
			break
		}
	}

	// Grammar rules are heuristic and stay advisory regardless of config.
	if rule.Family() == "grammar" && rr.Severity == config.SeverityError {
		rr.Severity = config.SeverityWarning
	}

	return rr
}

func applyRuleConfig(rr *ResolvedRule, ruleCfg config.RuleConfig) {
	cp := ruleCfg
	rr.Config = &cp

	if ruleCfg.Enabled != nil {
		rr.Enabled = *ruleCfg.Enabled
	}
	if ruleCfg.Severity != nil {
		if sev := config.Severity(*ruleCfg.Severity); sev.IsValid() {
			rr.Severity = sev
		}
	}
}
