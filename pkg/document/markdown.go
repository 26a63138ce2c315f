package document

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(gparser.WithAutoHeadingID()),
)

// scanMarkdown fills Context, Headings, and CodeBlocks for plain-text and
// markdown documents using the goldmark AST. Offsets from AST segments are
// mapped back to raw line numbers so findings stay anchored to the input.
func scanMarkdown(doc *Document) {
	root := markdown.Parser().Parse(text.NewReader(doc.Content))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			doc.addMarkdownHeading(node)
		case *ast.FencedCodeBlock:
			doc.addFencedBlock(node)
		case *ast.CodeBlock:
			doc.addIndentedBlock(node)
		}
		return ast.WalkContinue, nil
	})
}

func (d *Document) addMarkdownHeading(node *ast.Heading) {
	lines := node.Lines()
	if lines.Len() == 0 {
		return
	}

	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.Write(bytes.TrimSpace(d.Content[seg.Start:seg.Stop]))
	}

	first := lineAtOffset(d.Lines, lines.At(0).Start)
	last := lineAtOffset(d.Lines, lines.At(lines.Len()-1).Stop-1)
	for line := first; line <= last; line++ {
		d.Context[line-1].HeadingLevel = node.Level
	}

	d.Headings = append(d.Headings, Heading{
		Line:  first,
		Level: node.Level,
		Text:  string(bytes.TrimSpace(buf.Bytes())),
	})
}

func (d *Document) addFencedBlock(node *ast.FencedCodeBlock) {
	lines := node.Lines()
	if lines.Len() == 0 {
		return
	}

	start := lineAtOffset(d.Lines, lines.At(0).Start)
	end := lineAtOffset(d.Lines, lines.At(lines.Len()-1).Stop-1)

	// Include the fence lines themselves.
	if start > 1 {
		start--
	}
	if end < len(d.Lines) {
		end++
	}

	d.markCode(start, end)
	d.CodeBlocks = append(d.CodeBlocks, CodeBlock{
		StartLine: start,
		EndLine:   end,
		Info:      string(node.Language(d.Content)),
	})
}

func (d *Document) addIndentedBlock(node *ast.CodeBlock) {
	lines := node.Lines()
	if lines.Len() == 0 {
		return
	}
	// Indented blocks have no fence lines; the bounds are the content itself.
	start := lineAtOffset(d.Lines, lines.At(0).Start)
	end := lineAtOffset(d.Lines, lines.At(lines.Len()-1).Stop-1)
	d.markCode(start, end)
	d.CodeBlocks = append(d.CodeBlocks, CodeBlock{StartLine: start, EndLine: end, Bare: true})
}

func (d *Document) markCode(start, end int) {
	for line := start; line <= end && line <= len(d.Context); line++ {
		if line >= 1 {
			d.Context[line-1].InCode = true
		}
	}
}
