package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/report"

	_ "github.com/yaklabco/docstyle/pkg/check/rules" // register built-in rules
)

func TestExitCodeFromReport(t *testing.T) {
	tests := []struct {
		name     string
		findings []config.Severity
		failOn   config.Severity
		strict   bool
		want     int
	}{
		{"empty report", nil, config.SeverityError, false, ExitSuccess},
		{"error blocks", []config.Severity{config.SeverityError}, config.SeverityError, false, ExitFindings},
		{"warning passes by default", []config.Severity{config.SeverityWarning}, config.SeverityError, false, ExitSuccess},
		{"warning blocks on fail-on warning", []config.Severity{config.SeverityWarning}, config.SeverityWarning, false, ExitFindings},
		{"strict warning", []config.Severity{config.SeverityWarning}, config.SeverityError, true, ExitStrictWarnings},
		{"info never blocks on error", []config.Severity{config.SeverityInfo}, config.SeverityError, false, ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &report.Report{Counts: map[config.Severity]int{}}
			for i, sev := range tt.findings {
				rep.Findings = append(rep.Findings, check.Finding{
					RuleID: "x", Severity: sev, Line: i + 1, Message: "m",
				})
				rep.Counts[sev]++
			}

			assert.Equal(t, tt.want, ExitCodeFromReport(rep, tt.failOn, tt.strict))
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeForError(nil))
	assert.Equal(t, ExitFindings, ExitCodeForError(&ExitError{Code: ExitFindings}))
	assert.Equal(t, ExitConfigError, ExitCodeForError(&ExitError{Code: ExitConfigError, Err: errors.New("bad yaml")}))
	assert.Equal(t, ExitInternalError, ExitCodeForError(errors.New("boom")))
}

func setupWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	t.Chdir(dir)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand(BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommandCleanFile(t *testing.T) {
	dir := setupWorkDir(t)
	content := "<h1>Overview</h1>\n<p>Log in to the web console.</p>\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.xml"), []byte(content), 0o644))

	_, err := execute(t, "check", "doc.xml", "--color", "never")
	assert.NoError(t, err)
}

func TestCheckCommandBlockingFinding(t *testing.T) {
	dir := setupWorkDir(t)
	content := "<h1>Overview</h1>\n<p>Contact bob@corp.example.org for access.</p>\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.xml"), []byte(content), 0o644))

	out, err := execute(t, "check", "doc.xml", "--color", "never")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitFindings, exitErr.Code)
	assert.Contains(t, out, "pii_email")
}

func TestCheckCommandJSONOutput(t *testing.T) {
	dir := setupWorkDir(t)
	content := "<h1>Overview</h1>\n<p>We don't support that.</p>\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.xml"), []byte(content), 0o644))

	out, err := execute(t, "check", "doc.xml", "--format", "json", "--color", "never")
	// Warnings alone do not fail the run with the default threshold.
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, "1", envelope["version"])
}

func TestCheckCommandDisableRule(t *testing.T) {
	dir := setupWorkDir(t)
	content := "<h1>Overview</h1>\n<p>Contact bob@corp.example.org for access.</p>\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.xml"), []byte(content), 0o644))

	_, err := execute(t, "check", "doc.xml", "--disable", "pii_email", "--color", "never")
	assert.NoError(t, err)
}

func TestCheckCommandInvalidSeverity(t *testing.T) {
	setupWorkDir(t)

	_, err := execute(t, "check", "--severity", "fatal")
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidUsage, exitErr.Code)
}

func TestFilterCheckable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.xml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("x"), 0o644))

	got := filterCheckable([]string{"a.xml", "b.go", "missing.xml"}, dir)
	assert.Equal(t, []string{"a.xml"}, got)
}

func TestPasteHandlerHTML(t *testing.T) {
	handler := &pasteHandler{
		engine: check.NewEngine(check.DefaultRegistry),
		cfg:    config.NewConfig(),
	}

	form := url.Values{"content": {"We don't support the legacy blacklist.\n"}}
	req := httptest.NewRequest("POST", "/check", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.serveCheck(w, req)

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "contractions")
	assert.Contains(t, body, "inclusive_language")
}

func TestPasteHandlerJSON(t *testing.T) {
	handler := &pasteHandler{
		engine: check.NewEngine(check.DefaultRegistry),
		cfg:    config.NewConfig(),
	}

	form := url.Values{"content": {"The blacklist blocks access.\n"}, "format": {"json"}}
	req := httptest.NewRequest("POST", "/check", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.serveCheck(w, req)

	require.Equal(t, 200, w.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	findings, ok := envelope["findings"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, findings)

	first, ok := findings[0].(map[string]any)
	require.True(t, ok)

	// Pasted content has no path; locations are line-only.
	_, hasPath := first["path"]
	assert.False(t, hasPath)
}

func TestPasteHandlerRejectsGet(t *testing.T) {
	handler := &pasteHandler{
		engine: check.NewEngine(check.DefaultRegistry),
		cfg:    config.NewConfig(),
	}

	req := httptest.NewRequest("GET", "/check", nil)
	w := httptest.NewRecorder()
	handler.serveCheck(w, req)

	assert.Equal(t, 405, w.Code)
}

func TestRulesCommandJSON(t *testing.T) {
	rules := check.DefaultRegistry.Rules()
	assert.NotEmpty(t, rules)

	// Every registered rule carries a family and a default severity.
	for _, r := range rules {
		assert.NotEmpty(t, r.Family(), r.ID())
		assert.True(t, r.DefaultSeverity().IsValid(), r.ID())
	}
}
