package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/document"
)

func TestBuildLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single line no newline", content: "hello", want: []string{"hello"}},
		{name: "lf lines", content: "a\nb\nc\n", want: []string{"a", "b", "c"}},
		{name: "crlf lines", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "trailing content", content: "a\nb", want: []string{"a", "b"}},
		{name: "blank middle", content: "a\n\nb\n", want: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.Normalize("test.txt", []byte(tt.content))
			require.Equal(t, len(tt.want), doc.LineCount())
			for i, want := range tt.want {
				assert.Equal(t, want, doc.LineText(i+1), "line %d", i+1)
			}
		})
	}
}

func TestNormalizeMarkupHeadings(t *testing.T) {
	content := `<h1>Cluster Overview</h1>
<p>Intro text.</p>
<h2>How to configure the node</h2>
<p>Body.</p>`

	doc := document.Normalize("guide.xml", []byte(content))

	require.True(t, doc.Markup)
	require.Len(t, doc.Headings, 2)
	assert.Equal(t, document.Heading{Line: 1, Level: 1, Text: "Cluster Overview"}, doc.Headings[0])
	assert.Equal(t, document.Heading{Line: 3, Level: 2, Text: "How to configure the node"}, doc.Headings[1])
	assert.Equal(t, 1, doc.HeadingLevelAt(1))
	assert.Equal(t, 0, doc.HeadingLevelAt(2))
}

func TestNormalizeMarkupCodeRegions(t *testing.T) {
	content := `<p>Before.</p>
<pre>
ssh admin@10.0.0.1
</pre>
<p>After.</p>`

	doc := document.Normalize("guide.html", []byte(content))

	assert.False(t, doc.InCode(1))
	assert.True(t, doc.InCode(3), "pre content is code")
	assert.False(t, doc.InCode(5))

	require.Len(t, doc.CodeBlocks, 1)
	assert.Equal(t, 2, doc.CodeBlocks[0].StartLine)
	assert.Equal(t, 4, doc.CodeBlocks[0].EndLine)
	assert.Equal(t, 1, doc.CodeBlocks[0].ContentLines())
}

func TestNormalizeMarkupCodeMacro(t *testing.T) {
	content := `<p>Run this:</p>
<ac:structured-macro ac:name="code">
<ac:parameter ac:name="language">python</ac:parameter>
<ac:plain-text-body>print("hi")</ac:plain-text-body>
</ac:structured-macro>`

	doc := document.Normalize("page.xml", []byte(content))

	assert.True(t, doc.InCode(4))
	require.Len(t, doc.CodeBlocks, 1)
	assert.Equal(t, "python", doc.CodeBlocks[0].Info)
}

func TestNormalizeMarkupCallouts(t *testing.T) {
	content := `<p>Text.</p>
<ac:structured-macro ac:name="warning">
<ac:rich-text-body>Do not do this.</ac:rich-text-body>
</ac:structured-macro>
<div class="callout-note">Remember.</div>`

	doc := document.Normalize("page.xml", []byte(content))

	assert.Equal(t, "warning", doc.CalloutAt(3))
	assert.Equal(t, "", doc.CalloutAt(1))
	require.Len(t, doc.Callouts, 2)
	assert.Equal(t, "warning", doc.Callouts[0].Purpose)
	assert.Equal(t, "note", doc.Callouts[1].Purpose)
}

func TestNormalizeMarkupTOCAndImages(t *testing.T) {
	content := `<ac:structured-macro ac:name="toc"></ac:structured-macro>
<img src="a.png"/>
<img src="b.png" alt="cluster diagram"/>
<ac:image ac:alt=""><ri:attachment ri:filename="c.png"/></ac:image>`

	doc := document.Normalize("page.xml", []byte(content))

	assert.True(t, doc.HasTOCMacro)
	assert.Equal(t, 2, doc.ImagesMissingAlt)
}

func TestNormalizeMalformedMarkup(t *testing.T) {
	content := `<h1>Broken page
</div>
<p>Still analyzable text.</p>
<pre>never closed`

	doc := document.Normalize("broken.xml", []byte(content))

	require.Equal(t, 4, doc.LineCount())
	assert.Equal(t, "Still analyzable text.", doc.LineText(3))
	assert.True(t, doc.InCode(4), "unclosed pre still opens a code region")
}

func TestNormalizeMarkdownFallback(t *testing.T) {
	content := "# Getting Started\n\nSome text.\n\n```bash\nnvm list\n```\n"

	doc := document.Normalize("readme.md", []byte(content))

	require.False(t, doc.Markup)
	require.Len(t, doc.Headings, 1)
	assert.Equal(t, document.Heading{Line: 1, Level: 1, Text: "Getting Started"}, doc.Headings[0])

	require.Len(t, doc.CodeBlocks, 1)
	assert.Equal(t, "bash", doc.CodeBlocks[0].Info)
	assert.True(t, doc.InCode(6))
	assert.False(t, doc.InCode(3))
}

func TestNormalizeIndentedCodeBlock(t *testing.T) {
	// An indented block opening the document must not produce line 0.
	content := "    ssh admin@host\n    ls -la\n"

	doc := document.Normalize("notes.md", []byte(content))

	require.Len(t, doc.CodeBlocks, 1)
	block := doc.CodeBlocks[0]
	assert.Equal(t, 1, block.StartLine)
	assert.Equal(t, 2, block.EndLine)
	assert.True(t, block.Bare)
	assert.Equal(t, 2, block.ContentLines())
	assert.True(t, doc.InCode(1))
	assert.True(t, doc.InCode(2))
}

func TestBlank(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "empty", content: "", want: true},
		{name: "whitespace only", content: "  \n\t\n\n", want: true},
		{name: "has content", content: "\n\nhello\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.Normalize("test.txt", []byte(tt.content))
			assert.Equal(t, tt.want, doc.Blank())
		})
	}
}

func TestProse(t *testing.T) {
	content := `<p>Real sentence.</p>
<div class="wrapper">
</div>
<pre>code here</pre>`

	doc := document.Normalize("page.html", []byte(content))

	assert.True(t, doc.Prose(1))
	assert.False(t, doc.Prose(2), "tag-only line")
	assert.False(t, doc.Prose(4), "code line")
}

func TestPlainTextNoFindingsOnStructure(t *testing.T) {
	content := "Just a plain paragraph.\nAnother line.\n"

	doc := document.Normalize("notes.txt", []byte(content))

	assert.False(t, doc.Markup)
	assert.Empty(t, doc.Headings)
	assert.True(t, doc.Prose(1))
}
