package runner

import (
	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/report"
)

// FileOutcome wraps the check result for a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// RelPath is the path relative to the working directory, used for
	// reporting and glob matching.
	RelPath string

	// Result contains the check result for this file.
	// Nil if the file could not be read or checked.
	Result *check.FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully checked.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// RuleFaults is the number of rules that failed to complete, summed
	// across files.
	RuleFaults int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// newResult creates a Result sized for the given file count.
func newResult(capacity int) *Result {
	return &Result{Files: make([]FileOutcome, 0, capacity)}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.FindingsTotal += outcome.Result.FindingCount()
	r.Stats.RuleFaults += len(outcome.Result.RuleErrors)

	if outcome.Result.HasFindings() {
		r.Stats.FilesWithFindings++
	}
}

// FileFindings converts the runner result into aggregation inputs.
// Paths are reported relative to the working directory when possible.
func (r *Result) FileFindings() []report.FileFindings {
	out := make([]report.FileFindings, 0, len(r.Files))
	for _, f := range r.Files {
		path := f.RelPath
		if path == "" {
			path = f.Path
		}

		ff := report.FileFindings{Path: path, Err: f.Error}
		if f.Result != nil {
			ff.Findings = make([]check.Finding, len(f.Result.Findings))
			copy(ff.Findings, f.Result.Findings)
			for i := range ff.Findings {
				ff.Findings[i].FilePath = path
			}
		}
		out = append(out, ff)
	}
	return out
}
