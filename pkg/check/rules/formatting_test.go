package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check/rules"
)

func TestInlineStyles(t *testing.T) {
	rule := rules.NewInlineStylesRule()

	t.Run("discouraged style flagged", func(t *testing.T) {
		findings := runRule(t, rule, "doc.html",
			`<p style="font-family: Arial; color: red">Styled text.</p>`, nil)
		require.Len(t, findings, 2, "font-family and color: both flagged")
	})

	t.Run("tag only line still inspected", func(t *testing.T) {
		findings := runRule(t, rule, "doc.html", `<div style="font-size: 8px">`, nil)
		require.Len(t, findings, 1)
	})

	t.Run("plain tag accepted", func(t *testing.T) {
		findings := runRule(t, rule, "doc.html", `<p>Unstyled text.</p>`, nil)
		assert.Empty(t, findings)
	})
}

func TestQuoteStyle(t *testing.T) {
	rule := rules.NewQuoteStyleRule()

	t.Run("smart quotes flagged once per line", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "Use “the console” to check ‘status’.\n", nil)
		require.Len(t, findings, 1)
	})

	t.Run("straight quotes accepted", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", `Use "the console" to check status.`+"\n", nil)
		assert.Empty(t, findings)
	})
}

func TestListMarkerStyle(t *testing.T) {
	rule := rules.NewListMarkerStyleRule()

	t.Run("sequential bullets flagged", func(t *testing.T) {
		content := "- First, power off the node.\n- Then, remove the drive.\n- Finally, reseat it.\n"
		findings := runRule(t, rule, "doc.md", content, nil)
		require.Len(t, findings, 1)
		assert.Equal(t, 1, findings[0].Line)
	})

	t.Run("html list items flagged", func(t *testing.T) {
		content := "<ul>\n<li>First, stop the service.</li>\n<li>Then, clear the cache.</li>\n</ul>"
		findings := runRule(t, rule, "doc.html", content, nil)
		require.Len(t, findings, 1)
		assert.Equal(t, 2, findings[0].Line)
	})

	t.Run("unordered facts accepted", func(t *testing.T) {
		content := "- Three nodes minimum.\n- One uplink per node.\n"
		findings := runRule(t, rule, "doc.md", content, nil)
		assert.Empty(t, findings)
	})

	t.Run("single step bullet accepted", func(t *testing.T) {
		content := "- First, a caveat.\n- Capacity varies.\n"
		findings := runRule(t, rule, "doc.md", content, nil)
		assert.Empty(t, findings)
	})
}
