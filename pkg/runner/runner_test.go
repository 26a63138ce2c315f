package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

// todoRule flags lines containing "TODO".
type todoRule struct {
	check.BaseRule
}

func newTodoRule() *todoRule {
	return &todoRule{
		BaseRule: check.NewBaseRule(
			"todo_marker", "todo-marker", "Flags TODO markers.",
			"content", config.SeverityWarning, nil,
		),
	}
}

func (r *todoRule) Apply(rc *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	for line := 1; line <= len(rc.Doc.Lines); line++ {
		if strings.Contains(rc.Doc.LineText(line), "TODO") {
			findings = append(findings, check.NewFinding(r.ID(), line, "TODO marker found").Build())
		}
	}
	return findings, nil
}

func testEngine() *check.Engine {
	registry := check.NewRegistry()
	registry.Register(newTodoRule())
	return check.NewEngine(registry)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "guide.xml", "<p>hello</p>\n")
	writeFile(t, dir, "notes.txt", "hello\n")
	writeFile(t, dir, "image.png", "binary\n")
	writeFile(t, dir, ".hidden.xml", "<p>hidden</p>\n")
	writeFile(t, dir, ".git/config.xml", "<p>vcs</p>\n")
	writeFile(t, dir, "sub/page.html", "<p>sub</p>\n")
	writeFile(t, dir, "drafts/wip.xml", "<p>draft</p>\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"drafts/**"},
	})
	require.NoError(t, err)

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, r)
	}

	assert.Equal(t, []string{"guide.xml", "notes.txt", filepath.Join("sub", "page.html")}, rel)
}

func TestDiscoverExplicitFileBypassesExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "readme.rst", "hello\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"readme.rst"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	dir := t.TempDir()

	_, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"no-such-file.xml"},
	})
	assert.Error(t, err)
}

func TestRunChecksFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xml", "<p>TODO fix this</p>\n<p>fine</p>\n")
	writeFile(t, dir, "b.xml", "<p>all good</p>\n")

	r := New(testEngine())
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FindingsTotal)
	assert.Equal(t, 1, result.Stats.FilesWithFindings)
	assert.Equal(t, 0, result.Stats.FilesErrored)

	require.Len(t, result.Files, 2)
	assert.Equal(t, "a.xml", result.Files[0].RelPath)
	require.NotNil(t, result.Files[0].Result)
	require.Len(t, result.Files[0].Result.Findings, 1)
	assert.Equal(t, 1, result.Files[0].Result.Findings[0].Line)
}

func TestRunDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"z.xml", "a.xml", "m.xml", "b.xml"} {
		writeFile(t, dir, name, "<p>TODO</p>\n")
	}

	r := New(testEngine())
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Jobs:       4,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	var order []string
	for _, f := range result.Files {
		order = append(order, f.RelPath)
	}
	assert.Equal(t, []string{"a.xml", "b.xml", "m.xml", "z.xml"}, order)
}

func TestRunEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	r := New(testEngine())
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xml", "<p>TODO</p>\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(testEngine())
	_, err := r.Run(ctx, Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	assert.Error(t, err)
}

func TestFileFindingsConversion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xml", "<p>TODO</p>\n")

	r := New(testEngine())
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	inputs := result.FileFindings()
	require.Len(t, inputs, 1)
	assert.Equal(t, "a.xml", inputs[0].Path)
	require.Len(t, inputs[0].Findings, 1)
	assert.Equal(t, "a.xml", inputs[0].Findings[0].FilePath)
}
