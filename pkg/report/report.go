// Package report aggregates per-file findings into a single deterministic
// report and renders it as text or JSON.
package report

import (
	"sort"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

// FileFindings is the per-file input to aggregation.
type FileFindings struct {
	// Path is the document path. Empty for pasted content.
	Path string

	// Findings are the findings produced for this file.
	Findings []check.Finding

	// Err is a file-level failure (unreadable file, etc.). A file with
	// a non-nil Err contributes no findings.
	Err error
}

// FileError records a file that could not be checked.
type FileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Report is the aggregated result of a check run.
type Report struct {
	// Findings are deduplicated, filtered, and deterministically sorted.
	Findings []check.Finding

	// Counts holds the number of findings per severity, after filtering.
	Counts map[config.Severity]int

	// FilesChecked is the number of files that were evaluated.
	FilesChecked int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// Errors lists files that could not be checked.
	Errors []FileError
}

// Build aggregates per-file findings into a Report.
//
// Aggregation order:
//  1. Drop files matching cfg.Ignore globs.
//  2. Drop findings below cfg.MinSeverity.
//  3. Deduplicate on (rule ID, path, line, message).
//  4. Sort by severity rank, then path, then line, then rule ID.
func Build(files []FileFindings, cfg *config.Config) *Report {
	r := &Report{
		Counts: map[config.Severity]int{
			config.SeverityError:   0,
			config.SeverityWarning: 0,
			config.SeverityInfo:    0,
		},
	}

	type dedupeKey struct {
		ruleID  string
		path    string
		line    int
		message string
	}
	seen := make(map[dedupeKey]struct{})

	minSeverity := cfg.MinSeverity
	if minSeverity == "" {
		minSeverity = config.SeverityInfo
	}

	touched := make(map[string]struct{})

	for _, file := range files {
		if file.Path != "" && Excluded(file.Path, cfg.Ignore) {
			continue
		}

		if file.Err != nil {
			r.Errors = append(r.Errors, FileError{
				Path:    file.Path,
				Message: file.Err.Error(),
			})
			continue
		}

		r.FilesChecked++

		for _, f := range file.Findings {
			if !f.Severity.AtLeast(minSeverity) {
				continue
			}

			key := dedupeKey{f.RuleID, f.FilePath, f.Line, f.Message}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			r.Findings = append(r.Findings, f)
			r.Counts[f.Severity]++
			touched[file.Path] = struct{}{}
		}
	}

	r.FilesWithFindings = len(touched)

	sort.SliceStable(r.Findings, func(i, j int) bool {
		a, b := r.Findings[i], r.Findings[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.RuleID < b.RuleID
	})

	sort.Slice(r.Errors, func(i, j int) bool {
		return r.Errors[i].Path < r.Errors[j].Path
	})

	return r
}

// Total returns the number of findings in the report.
func (r *Report) Total() int {
	return len(r.Findings)
}

// Blocking reports whether any finding is at or above the fail-on threshold.
func (r *Report) Blocking(failOn config.Severity) bool {
	for _, f := range r.Findings {
		if f.Severity.AtLeast(failOn) {
			return true
		}
	}
	return false
}

// HasErrors reports whether any file failed to be checked.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// BySeverity returns the findings with the given severity, in report order.
func (r *Report) BySeverity(sev config.Severity) []check.Finding {
	var out []check.Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
