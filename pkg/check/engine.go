package check

import (
	"context"
	"fmt"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/document"
)

// RuleFaultID identifies the synthetic finding emitted when a rule fails.
const RuleFaultID = "rule_fault"

// FileResult contains the results of checking a single document.
type FileResult struct {
	// Doc is the normalized document.
	Doc *document.Document

	// Findings contains all issues found.
	Findings []Finding

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	// A failed rule never aborts the run; its error is recorded here and
	// surfaced as an informational rule_fault finding.
	RuleErrors map[string]error
}

// HasFindings returns true if any findings were produced.
func (fr *FileResult) HasFindings() bool {
	return len(fr.Findings) > 0
}

// FindingCount returns the total number of findings.
func (fr *FileResult) FindingCount() int {
	return len(fr.Findings)
}

// Engine coordinates normalization and rule execution.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// CheckDocument normalizes and checks a single document. The path may be
// empty for pasted content; findings then carry line-only locations.
// Empty or whitespace-only content produces no findings.
//
// A rule that returns an error or panics is recorded in RuleErrors and
// replaced by a rule_fault finding while the remaining rules still run.
func (e *Engine) CheckDocument(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	doc := document.Normalize(path, content)

	result := &FileResult{
		Doc:        doc,
		RuleErrors: make(map[string]error),
	}

	// Empty and whitespace-only input carries nothing to check.
	if doc.Blank() {
		return result, nil
	}

	resolved := ResolveRules(e.Registry, cfg)

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("check cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, doc, cfg, rr.Config)
		ruleCtx.Registry = e.Registry

		findings, err := applyRule(rr.Rule, ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			result.Findings = append(result.Findings, ruleFault(rr.Rule, path, err))
			continue
		}

		for i := range findings {
			// Apply resolved severity.
			findings[i].Severity = rr.Severity

			if findings[i].FilePath == "" {
				findings[i].FilePath = path
			}
			if findings[i].RuleName == "" {
				findings[i].RuleName = rr.Rule.Name()
			}
			if findings[i].Family == "" {
				findings[i].Family = rr.Rule.Family()
			}
		}

		result.Findings = append(result.Findings, findings...)
	}

	return result, nil
}

// applyRule runs a rule, converting panics into errors so one misbehaving
// rule cannot take down the whole run.
func applyRule(rule Rule, rc *RuleContext) (findings []Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.ID(), r)
		}
	}()
	return rule.Apply(rc)
}

func ruleFault(rule Rule, path string, err error) Finding {
	return Finding{
		RuleID:   RuleFaultID,
		RuleName: "rule-fault",
		Family:   rule.Family(),
		Message:  fmt.Sprintf("rule %s did not complete: %v", rule.ID(), err),
		Severity: config.SeverityInfo,
		FilePath: path,
		Line:     1,
	}
}
