package cli

import (
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/report"
)

// Exit codes for docstyle.
const (
	// ExitSuccess indicates successful execution with no blocking findings.
	ExitSuccess = 0

	// ExitFindings indicates the check completed but found blocking findings.
	ExitFindings = 1

	// ExitStrictWarnings indicates warnings found in strict mode.
	ExitStrictWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromReport determines the exit code for a finished check.
// failOn is the blocking threshold (default error). In strict mode any
// warning also fails.
func ExitCodeFromReport(r *report.Report, failOn config.Severity, strict bool) int {
	if r == nil {
		return ExitSuccess
	}

	if failOn == "" {
		failOn = config.SeverityError
	}

	if r.Blocking(failOn) {
		return ExitFindings
	}

	if strict && r.Counts[config.SeverityWarning] > 0 {
		return ExitStrictWarnings
	}

	if r.HasErrors() {
		return ExitIOError
	}

	return ExitSuccess
}
