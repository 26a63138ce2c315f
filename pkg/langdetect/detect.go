// Package langdetect provides language detection for code block content.
// It uses go-enry plus a handful of documentation-oriented heuristics to
// suggest a language tag for untagged code blocks.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const (
	langBash   = "bash"
	langPython = "python"
	langJSON   = "json"
	langYAML   = "yaml"
	langSQL    = "sql"
	langXML    = "xml"
	langText   = "text"
)

// Common CLI tools that open shell transcripts in product documentation.
var shellCommands = []string{
	"ssh ", "curl ", "kubectl ", "docker ", "systemctl ", "ncli ", "acli ",
	"cd ", "ls ", "cat ", "grep ", "sudo ", "tar ", "scp ",
}

// classifier candidates for documentation snippets.
var candidates = []string{
	"Shell", "Python", "JSON", "YAML", "SQL", "XML", "Go", "JavaScript", "HTML",
}

// Detect returns a suggested language tag for code content.
// Returns "text" when no confident detection is possible.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return langText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

func detectByPattern(trimmed []byte) string {
	text := string(trimmed)

	if lang := detectShell(text); lang != "" {
		return lang
	}
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return langXML
	}
	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return langJSON
	}
	if lang := detectSQL(text); lang != "" {
		return lang
	}
	if lang := detectPython(text); lang != "" {
		return lang
	}
	if lang := detectYAML(trimmed); lang != "" {
		return lang
	}
	return ""
}

// detectShell recognizes the command transcripts that dominate runbook and
// KB code blocks: prompt prefixes and well-known tools.
func detectShell(text string) string {
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "$ ") || strings.HasPrefix(line, "# ") {
			return langBash
		}
		for _, cmd := range shellCommands {
			if strings.HasPrefix(line, cmd) {
				return langBash
			}
		}
	}
	return ""
}

func detectSQL(text string) string {
	upper := strings.ToUpper(strings.TrimSpace(text))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, kw) {
			return langSQL
		}
	}
	return ""
}

func detectPython(text string) string {
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return langPython
	}
	if strings.Contains(text, "__main__") {
		return langPython
	}
	return ""
}

// detectYAML counts root-level key: value pairs and list items.
func detectYAML(trimmed []byte) string {
	count := 0
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) && !bytes.ContainsAny(line, "({") {
			count++
		} else if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	if count >= 2 {
		return langYAML
	}
	return ""
}

func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
