package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check/rules"
	"github.com/yaklabco/docstyle/pkg/config"
)

func TestContractions(t *testing.T) {
	rule := rules.NewContractionsRule()

	findings := runRule(t, rule, "doc.txt", "Don't restart the node.\nThe node won't respond.\n", nil)
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0].Suggestion, `"do not"`)
	assert.Contains(t, findings[1].Suggestion, `"will not"`)
	assert.Equal(t, []int{1, 2}, lines(findings))
}

func TestPassiveVoice(t *testing.T) {
	rule := rules.NewPassiveVoiceRule()

	t.Run("passive indicator flagged", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "The threshold is set by the controller.\n", nil)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "is set")
	})

	t.Run("active voice accepted", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "The controller sets the threshold.\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("code lines exempt", func(t *testing.T) {
		findings := runRule(t, rule, "doc.md", "```\nvalue is set here\n```\n", nil)
		assert.Empty(t, findings)
	})
}

func TestDirectAddress(t *testing.T) {
	rule := rules.NewDirectAddressRule()

	findings := runRule(t, rule, "doc.txt", "The end user opens the console.\n", nil)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "the end user")
}

func TestHeadingCase(t *testing.T) {
	rule := rules.NewHeadingCaseRule()

	tests := []struct {
		name           string
		content        string
		wantLine       int
		wantSuggestion string
	}{
		{
			name:           "title case heading",
			content:        "<h1>How To Configure The Node</h1>",
			wantLine:       1,
			wantSuggestion: "How to configure the node",
		},
		{
			name:           "markdown heading",
			content:        "# Upgrade The Cluster\n",
			wantLine:       1,
			wantSuggestion: "Upgrade the cluster",
		},
		{
			name:           "acronyms kept",
			content:        "<h2>Configure The DNS Server</h2>",
			wantLine:       1,
			wantSuggestion: "Configure the DNS server",
		},
		{
			name:           "proper names kept",
			content:        "<h2>Boot Into Phoenix</h2>",
			wantLine:       1,
			wantSuggestion: "Boot into Phoenix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runRule(t, rule, "doc.xml", tt.content, nil)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantLine, findings[0].Line)
			assert.Equal(t, tt.wantSuggestion, findings[0].Suggestion)
			assert.Equal(t, config.SeverityWarning, rule.DefaultSeverity())
		})
	}

	t.Run("sentence case accepted", func(t *testing.T) {
		findings := runRule(t, rule, "doc.xml", "<h1>How to configure the node</h1>", nil)
		assert.Empty(t, findings)
	})
}

func TestAbilityNeutral(t *testing.T) {
	rule := rules.NewAbilityNeutralRule()

	findings := runRule(t, rule, "doc.txt", "As you can see, the alert clears.\n", nil)
	require.Len(t, findings, 1)
}

func TestDescriptiveLinks(t *testing.T) {
	rule := rules.NewDescriptiveLinksRule()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "click here in anchor",
			content: `<p><a href="/guide">click here</a></p>`,
			want:    1,
		},
		{
			name:    "markdown link",
			content: "[read more](https://example.com/guide)\n",
			want:    1,
		},
		{
			name:    "descriptive anchor text",
			content: `<p><a href="/guide">upgrade guide</a></p>`,
			want:    0,
		},
		{
			name:    "pattern without a link is ignored",
			content: "Click here refers to the button label.\n",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runRule(t, rule, "doc.html", tt.content, nil)
			assert.Len(t, findings, tt.want)
		})
	}
}
