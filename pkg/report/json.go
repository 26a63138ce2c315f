package report

import (
	"encoding/json"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

// jsonVersion identifies the JSON envelope schema.
const jsonVersion = "1"

// jsonOutput is the top-level JSON envelope.
type jsonOutput struct {
	Version  string        `json:"version"`
	Findings []jsonFinding `json:"findings"`
	Errors   []FileError   `json:"errors,omitempty"`
	Summary  jsonSummary   `json:"summary"`
}

// jsonFinding is the wire form of a single finding.
type jsonFinding struct {
	RuleID     string `json:"rule_id"`
	RuleName   string `json:"rule_name,omitempty"`
	Family     string `json:"family"`
	Severity   string `json:"severity"`
	Path       string `json:"path,omitempty"`
	Line       int    `json:"line"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// jsonSummary aggregates counts for machine consumers.
type jsonSummary struct {
	Total             int            `json:"total"`
	BySeverity        map[string]int `json:"by_severity"`
	FilesChecked      int            `json:"files_checked"`
	FilesWithFindings int            `json:"files_with_findings"`
}

type jsonRenderer struct {
	opts Options
}

func newJSONRenderer(opts Options) *jsonRenderer {
	return &jsonRenderer{opts: opts}
}

// Render writes the report as indented JSON.
func (j *jsonRenderer) Render(r *Report) error {
	out := jsonOutput{
		Version:  jsonVersion,
		Findings: make([]jsonFinding, 0, len(r.Findings)),
		Errors:   r.Errors,
		Summary: jsonSummary{
			Total: r.Total(),
			BySeverity: map[string]int{
				string(config.SeverityError):   r.Counts[config.SeverityError],
				string(config.SeverityWarning): r.Counts[config.SeverityWarning],
				string(config.SeverityInfo):    r.Counts[config.SeverityInfo],
			},
			FilesChecked:      r.FilesChecked,
			FilesWithFindings: r.FilesWithFindings,
		},
	}

	for _, f := range r.Findings {
		out.Findings = append(out.Findings, toJSONFinding(f))
	}

	enc := json.NewEncoder(j.opts.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONFinding(f check.Finding) jsonFinding {
	return jsonFinding{
		RuleID:     f.RuleID,
		RuleName:   f.RuleName,
		Family:     f.Family,
		Severity:   string(f.Severity),
		Path:       f.FilePath,
		Line:       f.Line,
		Message:    f.Message,
		Suggestion: f.Suggestion,
	}
}
