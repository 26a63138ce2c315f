package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check/rules"
	"github.com/yaklabco/docstyle/pkg/config"
)

func TestKBReferenceFormat(t *testing.T) {
	rule := rules.NewKBReferenceFormatRule()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "too few digits", content: "Refer to KB-123 for details.\n", want: 1},
		{name: "missing hyphen", content: "Refer to KB5013 for details.\n", want: 1},
		{name: "lowercase prefix", content: "Refer to kb-5013 for details.\n", want: 1},
		{name: "well formed", content: "Refer to KB-5013 for details.\n", want: 0},
		{name: "no reference", content: "Refer to the portal.\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runRule(t, rule, "doc.txt", tt.content, nil)
			require.Len(t, findings, tt.want)
			if tt.want > 0 {
				assert.Equal(t, 1, findings[0].Line)
				assert.Equal(t, config.SeverityInfo, rule.DefaultSeverity())
			}
		})
	}
}

func TestKBReferenceLink(t *testing.T) {
	rule := rules.NewKBReferenceLinkRule()

	t.Run("unlinked reference flagged", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "See KB-5013 for the workaround.\n", nil)
		require.Len(t, findings, 1)
	})

	t.Run("linked reference accepted", func(t *testing.T) {
		findings := runRule(t, rule, "doc.html",
			`<p>See <a href="/kb/5013">KB-5013</a> for the workaround.</p>`, nil)
		assert.Empty(t, findings)
	})
}

func TestVersionFormat(t *testing.T) {
	rule := rules.NewVersionFormatRule()

	t.Run("two part version flagged", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "Upgrade to 7.3 before proceeding.\n", nil)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Suggestion, "7.3.0")
	})

	t.Run("three part version accepted", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "Upgrade to 7.3.0 before proceeding.\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("disabled by config", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "Upgrade to 7.3 first.\n", func(cfg *config.Config) {
			cfg.Content.RequireFullVersions = false
		})
		assert.Empty(t, findings)
	})
}

func TestPIIIPAddress(t *testing.T) {
	rule := rules.NewPIIIPAddressRule()

	tests := []struct {
		name    string
		path    string
		content string
		want    int
	}{
		{
			name:    "real ip flagged as error",
			path:    "doc.txt",
			content: "Connect to 10.1.1.50 over SSH.\n",
			want:    1,
		},
		{
			name:    "masked ip accepted",
			path:    "doc.txt",
			content: "Connect to x.x.x.123 over SSH.\n",
			want:    0,
		},
		{
			name:    "code region exempt",
			path:    "doc.xml",
			content: "<pre>\nssh nutanix@10.1.1.50\n</pre>",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runRule(t, rule, tt.path, tt.content, nil)
			require.Len(t, findings, tt.want)
			if tt.want > 0 {
				assert.Equal(t, config.SeverityError, rule.DefaultSeverity())
			}
		})
	}
}

func TestPIIEmail(t *testing.T) {
	rule := rules.NewPIIEmailRule()

	t.Run("personal email flagged", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "Contact jane.roe@gmail.com for access.\n", nil)
		require.Len(t, findings, 1)
		assert.Equal(t, config.SeverityError, rule.DefaultSeverity())
	})

	t.Run("allowed domain accepted", func(t *testing.T) {
		findings := runRule(t, rule, "doc.txt", "Contact admin@example.com for access.\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("code region exempt", func(t *testing.T) {
		findings := runRule(t, rule, "doc.md", "```\nmail jane.roe@gmail.com\n```\n", nil)
		assert.Empty(t, findings)
	})
}

func TestImageAltText(t *testing.T) {
	rule := rules.NewImageAltTextRule()

	t.Run("missing alt reported once", func(t *testing.T) {
		content := `<img src="a.png"/>` + "\n" + `<img src="b.png"/>`
		findings := runRule(t, rule, "doc.xml", content, nil)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "2 images")
		assert.Equal(t, 1, findings[0].Line)
	})

	t.Run("alt present", func(t *testing.T) {
		findings := runRule(t, rule, "doc.xml", `<img src="a.png" alt="cluster diagram"/>`, nil)
		assert.Empty(t, findings)
	})
}
