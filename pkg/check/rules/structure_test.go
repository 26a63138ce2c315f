package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/check/rules"
	"github.com/yaklabco/docstyle/pkg/config"
)

func TestRequiredSections(t *testing.T) {
	rule := rules.NewRequiredSectionsRule()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "overview heading present",
			content: "<h1>Overview</h1>\n<p>Intro.</p>",
			want:    0,
		},
		{
			name:    "overview heading missing",
			content: "<h1>Details</h1>\n<p>An overview paragraph does not count.</p>",
			want:    1,
		},
		{
			name:    "plain text falls back to content search",
			content: "Overview\n\nSome notes.\n",
			want:    0,
		},
		{
			name:    "case insensitive match",
			content: "<h2>OVERVIEW</h2>",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runRule(t, rule, "doc.xml", tt.content, nil)
			assert.Len(t, findings, tt.want)
			if tt.want == 1 {
				assert.Equal(t, 1, findings[0].Line)
			}
		})
	}
}

func TestRequiredSectionsExactlyOnePerMissing(t *testing.T) {
	rule := rules.NewRequiredSectionsRule()
	findings := runRule(t, rule, "doc.xml", "<h1>Other</h1>", func(cfg *config.Config) {
		cfg.Structure.RequiredSections = []string{"Overview", "Prerequisites"}
	})
	require.Len(t, findings, 2)
}

func TestRequiredSectionsEmptyConfig(t *testing.T) {
	rule := rules.NewRequiredSectionsRule()
	findings := runRule(t, rule, "doc.xml", "<h1>Anything</h1>", func(cfg *config.Config) {
		cfg.Structure.RequiredSections = nil
	})
	assert.Empty(t, findings)
}

func TestTOCRecommended(t *testing.T) {
	rule := rules.NewTOCRule()
	long := "<p>line</p>\n"

	t.Run("long document without toc", func(t *testing.T) {
		findings := runRule(t, rule, "doc.xml", strings.Repeat(long, 60), nil)
		require.Len(t, findings, 1)
		assert.Equal(t, 1, findings[0].Line)
	})

	t.Run("short document skipped", func(t *testing.T) {
		findings := runRule(t, rule, "doc.xml", strings.Repeat(long, 10), nil)
		assert.Empty(t, findings)
	})

	t.Run("toc macro satisfies the rule", func(t *testing.T) {
		content := `<ac:structured-macro ac:name="toc"></ac:structured-macro>` + "\n" +
			strings.Repeat(long, 60)
		findings := runRule(t, rule, "doc.xml", content, nil)
		assert.Empty(t, findings)
	})

	t.Run("table of contents text satisfies the rule", func(t *testing.T) {
		content := "<p>Table of Contents</p>\n" + strings.Repeat(long, 60)
		findings := runRule(t, rule, "doc.xml", content, nil)
		assert.Empty(t, findings)
	})
}
