package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check/rules"
	"github.com/yaklabco/docstyle/pkg/config"
)

func TestModuleNameFormat(t *testing.T) {
	rule := rules.NewModuleNameFormatRule()

	assert.False(t, rule.DefaultEnabled(), "opt-in rule")

	t.Run("matching name accepted", func(t *testing.T) {
		findings := runRule(t, rule, "training/AOS-101-intro.xml", "<p>Module.</p>", nil)
		assert.Empty(t, findings)
	})

	t.Run("non-matching name flagged", func(t *testing.T) {
		findings := runRule(t, rule, "training/intro.xml", "<p>Module.</p>", nil)
		require.Len(t, findings, 1)
	})

	t.Run("pasted content skipped", func(t *testing.T) {
		findings := runRule(t, rule, "", "<p>Module.</p>", nil)
		assert.Empty(t, findings)
	})

	t.Run("bad pattern is a rule error", func(t *testing.T) {
		_, err := applyRuleRaw(t, rule, "training/intro.xml", "<p>Module.</p>", func(cfg *config.Config) {
			cfg.Training.ModuleNamePattern = "(["
		})
		assert.Error(t, err)
	})
}

func TestTrainingSections(t *testing.T) {
	rule := rules.NewTrainingSectionsRule()

	t.Run("missing sections reported", func(t *testing.T) {
		findings := runRule(t, rule, "doc.xml", "<h1>Module</h1>", nil)
		require.Len(t, findings, 2)
	})

	t.Run("present sections accepted", func(t *testing.T) {
		content := "<h2>What You Will Learn</h2>\n<h2>Knowledge Check</h2>"
		findings := runRule(t, rule, "doc.xml", content, nil)
		assert.Empty(t, findings)
	})
}

func TestCodeBlockLanguage(t *testing.T) {
	rule := rules.NewCodeBlockLanguageRule()

	t.Run("untagged block gets a suggestion", func(t *testing.T) {
		content := "```\n$ ncli cluster info\n```\n"
		findings := runRule(t, rule, "doc.md", content, nil)
		require.Len(t, findings, 1)
		assert.Equal(t, 1, findings[0].Line)
		assert.Contains(t, findings[0].Suggestion, `"bash"`)
	})

	t.Run("tagged block accepted", func(t *testing.T) {
		content := "```bash\n$ ncli cluster info\n```\n"
		findings := runRule(t, rule, "doc.md", content, nil)
		assert.Empty(t, findings)
	})

	t.Run("indented block opening the document", func(t *testing.T) {
		content := "    ssh admin@host\n    ls -la\n"
		findings := runRule(t, rule, "doc.md", content, nil)
		require.Len(t, findings, 1)
		assert.Equal(t, 1, findings[0].Line)
	})
}

func TestCodeBlockTheme(t *testing.T) {
	rule := rules.NewCodeBlockThemeRule()

	longBlock := "```python\n" + strings.Repeat("print(1)\n", 12) + "```\n"

	t.Run("long block without theme flagged", func(t *testing.T) {
		findings := runRule(t, rule, "doc.md", longBlock, nil)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "django")
	})

	t.Run("short block skipped", func(t *testing.T) {
		content := "```python\nprint(1)\n```\n"
		findings := runRule(t, rule, "doc.md", content, nil)
		assert.Empty(t, findings)
	})

	t.Run("theme mention accepted", func(t *testing.T) {
		content := "```python\n# theme: django\n" + strings.Repeat("print(1)\n", 12) + "```\n"
		findings := runRule(t, rule, "doc.md", content, nil)
		assert.Empty(t, findings)
	})
}

func TestCalloutBalance(t *testing.T) {
	rule := rules.NewCalloutBalanceRule()

	t.Run("excessive warnings flagged", func(t *testing.T) {
		content := strings.Repeat("<p>Warning: do not unplug the node.</p>\n", 6)
		findings := runRule(t, rule, "doc.xml", content, nil)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "(6)")
	})

	t.Run("warning macros counted", func(t *testing.T) {
		macro := "<ac:structured-macro ac:name=\"warning\"><ac:rich-text-body>Careful.</ac:rich-text-body></ac:structured-macro>\n"
		findings := runRule(t, rule, "doc.xml", strings.Repeat(macro, 6), nil)
		require.Len(t, findings, 1)
	})

	t.Run("few warnings accepted", func(t *testing.T) {
		content := strings.Repeat("<p>Warning: check cabling.</p>\n", 2)
		findings := runRule(t, rule, "doc.xml", content, nil)
		assert.Empty(t, findings)
	})
}
