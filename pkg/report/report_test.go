package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

func finding(ruleID, path string, line int, sev config.Severity, msg string) check.Finding {
	return check.Finding{
		RuleID:   ruleID,
		Family:   "grammar",
		Severity: sev,
		FilePath: path,
		Line:     line,
		Message:  msg,
	}
}

func TestBuildSortsBySeverityThenLocation(t *testing.T) {
	cfg := config.NewConfig()

	files := []FileFindings{
		{
			Path: "b.xml",
			Findings: []check.Finding{
				finding("vague_term", "b.xml", 3, config.SeverityInfo, "vague"),
				finding("pii_ip_address", "b.xml", 9, config.SeverityError, "ip"),
			},
		},
		{
			Path: "a.xml",
			Findings: []check.Finding{
				finding("contractions", "a.xml", 12, config.SeverityWarning, "contraction"),
				finding("pii_email", "a.xml", 2, config.SeverityError, "email"),
			},
		},
	}

	r := Build(files, cfg)

	require.Len(t, r.Findings, 4)
	assert.Equal(t, "pii_email", r.Findings[0].RuleID)
	assert.Equal(t, "pii_ip_address", r.Findings[1].RuleID)
	assert.Equal(t, "contractions", r.Findings[2].RuleID)
	assert.Equal(t, "vague_term", r.Findings[3].RuleID)

	assert.Equal(t, 2, r.Counts[config.SeverityError])
	assert.Equal(t, 1, r.Counts[config.SeverityWarning])
	assert.Equal(t, 1, r.Counts[config.SeverityInfo])
	assert.Equal(t, 2, r.FilesChecked)
	assert.Equal(t, 2, r.FilesWithFindings)
}

func TestBuildDeduplicates(t *testing.T) {
	cfg := config.NewConfig()

	f := finding("preferred_term", "doc.xml", 5, config.SeverityWarning, "use email")
	r := Build([]FileFindings{
		{Path: "doc.xml", Findings: []check.Finding{f, f, f}},
	}, cfg)

	assert.Equal(t, 1, r.Total())
}

func TestBuildKeepsDistinctMessagesOnSameLine(t *testing.T) {
	cfg := config.NewConfig()

	r := Build([]FileFindings{{
		Path: "doc.xml",
		Findings: []check.Finding{
			finding("vague_term", "doc.xml", 5, config.SeverityInfo, "Vague term: box"),
			finding("vague_term", "doc.xml", 5, config.SeverityInfo, "Vague term: machine"),
		},
	}}, cfg)

	assert.Equal(t, 2, r.Total())
}

func TestBuildMinSeverityFilter(t *testing.T) {
	cfg := config.NewConfig()
	cfg.MinSeverity = config.SeverityWarning

	r := Build([]FileFindings{{
		Path: "doc.xml",
		Findings: []check.Finding{
			finding("pii_email", "doc.xml", 1, config.SeverityError, "email"),
			finding("contractions", "doc.xml", 2, config.SeverityWarning, "contraction"),
			finding("vague_term", "doc.xml", 3, config.SeverityInfo, "vague"),
		},
	}}, cfg)

	assert.Equal(t, 2, r.Total())
	assert.Equal(t, 0, r.Counts[config.SeverityInfo])
}

func TestBuildExclusionGlobs(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Ignore = []string{"drafts/**", "*.bak.xml"}

	r := Build([]FileFindings{
		{Path: "drafts/wip.xml", Findings: []check.Finding{
			finding("pii_email", "drafts/wip.xml", 1, config.SeverityError, "email"),
		}},
		{Path: "old.bak.xml", Findings: []check.Finding{
			finding("pii_email", "old.bak.xml", 1, config.SeverityError, "email"),
		}},
		{Path: "docs/guide.xml", Findings: []check.Finding{
			finding("contractions", "docs/guide.xml", 4, config.SeverityWarning, "contraction"),
		}},
	}, cfg)

	require.Equal(t, 1, r.Total())
	assert.Equal(t, "docs/guide.xml", r.Findings[0].FilePath)
	assert.Equal(t, 1, r.FilesChecked)
}

func TestBuildFileErrors(t *testing.T) {
	cfg := config.NewConfig()

	r := Build([]FileFindings{
		{Path: "missing.xml", Err: errors.New("open missing.xml: no such file")},
		{Path: "ok.xml"},
	}, cfg)

	require.True(t, r.HasErrors())
	assert.Equal(t, "missing.xml", r.Errors[0].Path)
	assert.Equal(t, 1, r.FilesChecked)
	assert.Equal(t, 0, r.Total())
}

func TestBlocking(t *testing.T) {
	tests := []struct {
		name     string
		severity config.Severity
		failOn   config.Severity
		want     bool
	}{
		{"error blocks on error", config.SeverityError, config.SeverityError, true},
		{"warning does not block on error", config.SeverityWarning, config.SeverityError, false},
		{"warning blocks on warning", config.SeverityWarning, config.SeverityWarning, true},
		{"info blocks on info", config.SeverityInfo, config.SeverityInfo, true},
		{"info does not block on warning", config.SeverityInfo, config.SeverityWarning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Findings: []check.Finding{
				finding("x", "doc.xml", 1, tt.severity, "m"),
			}}
			assert.Equal(t, tt.want, r.Blocking(tt.failOn))
		})
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"docs/guide.xml", "*.xml", true},
		{"docs/guide.xml", "docs/*.xml", true},
		{"docs/guide.xml", "*.html", false},
		{"drafts/a/b.xml", "drafts/**", true},
		{"drafts", "drafts/**", true},
		{"vendor/lib/readme.txt", "**/vendor", true},
		{"a/vendor/readme.txt", "a/**", true},
		{"a/b/archive", "**/archive", true},
		{"anything.txt", "**", true},
	}

	for _, tt := range tests {
		t.Run(tt.path+"_"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchGlob(tt.path, tt.pattern))
		})
	}
}

func TestTextRendererOutput(t *testing.T) {
	cfg := config.NewConfig()
	r := Build([]FileFindings{{
		Path: "doc.xml",
		Findings: []check.Finding{
			{
				RuleID: "heading_case", Family: "grammar",
				Severity: config.SeverityWarning, FilePath: "doc.xml", Line: 1,
				Message:    "Heading should use sentence case",
				Suggestion: "How to configure the node",
			},
		},
	}}, cfg)

	var buf bytes.Buffer
	renderer, err := NewRenderer(Options{
		Writer:          &buf,
		Format:          config.FormatText,
		Color:           "never",
		ShowSummary:     true,
		ShowSuggestions: true,
	})
	require.NoError(t, err)
	require.NoError(t, renderer.Render(r))

	out := buf.String()
	assert.Contains(t, out, "WARNING (1 finding)")
	assert.Contains(t, out, "doc.xml:1")
	assert.Contains(t, out, "Heading should use sentence case")
	assert.Contains(t, out, "(heading_case)")
	assert.Contains(t, out, "suggestion: How to configure the node")
	assert.Contains(t, out, "1 warning(s)")
}

func TestJSONRendererEnvelope(t *testing.T) {
	cfg := config.NewConfig()
	r := Build([]FileFindings{{
		Path: "doc.xml",
		Findings: []check.Finding{
			finding("pii_email", "doc.xml", 3, config.SeverityError, "Email address found"),
		},
	}}, cfg)

	var buf bytes.Buffer
	renderer, err := NewRenderer(Options{Writer: &buf, Format: config.FormatJSON})
	require.NoError(t, err)
	require.NoError(t, renderer.Render(r))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1", out["version"])

	findings, ok := out["findings"].([]any)
	require.True(t, ok)
	require.Len(t, findings, 1)

	first, ok := findings[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pii_email", first["rule_id"])
	assert.Equal(t, "error", first["severity"])
	assert.Equal(t, float64(3), first["line"])

	summary, ok := out["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), summary["total"])
}

func TestRenderedReportsByteIdentical(t *testing.T) {
	cfg := config.NewConfig()
	files := []FileFindings{
		{
			Path: "b.xml",
			Findings: []check.Finding{
				finding("vague_term", "b.xml", 3, config.SeverityInfo, "vague"),
				finding("pii_ip_address", "b.xml", 9, config.SeverityError, "ip"),
			},
		},
		{
			Path: "a.xml",
			Findings: []check.Finding{
				finding("heading_case", "a.xml", 1, config.SeverityWarning, "case"),
			},
		},
	}

	render := func(format config.OutputFormat) string {
		var buf bytes.Buffer
		renderer, err := NewRenderer(Options{Writer: &buf, Format: format, Color: "never"})
		require.NoError(t, err)
		require.NoError(t, renderer.Render(Build(files, cfg)))
		return buf.String()
	}

	// Repeated runs on unchanged input produce byte-identical output.
	assert.Equal(t, render(config.FormatText), render(config.FormatText))
	assert.Equal(t, render(config.FormatJSON), render(config.FormatJSON))
}

func TestNewRendererRejectsUnknownFormat(t *testing.T) {
	_, err := NewRenderer(Options{Format: config.OutputFormat("xml")})
	assert.Error(t, err)
}
