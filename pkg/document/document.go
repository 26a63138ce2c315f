// Package document provides the normalized, line-indexed representation of
// documentation content for docstyle. It converts raw XML, HTML, or plain
// text into a Document without ever failing on malformed markup: the
// structured scan degrades to plain-text line analysis rather than aborting.
package document

import "bytes"

// Document is an immutable, line-addressable view of one input document.
// Line numbers are 1-based and always refer to the raw input, so findings
// point at locations meaningful to the original author.
type Document struct {
	// Path is the file path (empty for pasted content).
	Path string

	// Content is the full raw input bytes.
	Content []byte

	// Lines contains byte-offset metadata for each line.
	Lines []LineInfo

	// Context carries the structural context of each line (parallel to Lines).
	Context []LineContext

	// Headings lists every heading found, in document order.
	Headings []Heading

	// CodeBlocks lists every preformatted/code region, in document order.
	CodeBlocks []CodeBlock

	// Callouts lists every callout/admonition region, in document order.
	Callouts []Callout

	// Markup is true when the structured markup scan produced the context;
	// false when the document fell back to plain-text/markdown treatment.
	Markup bool

	// HasTOCMacro is true when a table-of-contents macro was found in the
	// parsed markup.
	HasTOCMacro bool

	// ImagesMissingAlt counts images in the parsed markup without alt text.
	ImagesMissingAlt int
}

// LineInfo holds byte-offset metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of input).
	EndOffset int
}

// LineContext describes the structural context of one line.
type LineContext struct {
	// HeadingLevel is the heading depth (1-6) when the line is part of a
	// heading, 0 otherwise.
	HeadingLevel int

	// InCode is true when the line falls inside a preformatted or code
	// region. Such lines are exempt from prose rules.
	InCode bool

	// Callout names the purpose of the enclosing callout/admonition
	// ("info", "note", "warning", "tip"), empty outside callouts.
	Callout string

	// TagOnly is true when the line consists solely of markup tags.
	TagOnly bool
}

// Heading is one heading with its resolved text content.
type Heading struct {
	// Line is the 1-based line number where the heading text appears.
	Line int

	// Level is the heading depth (1 for h1/#, up to 6).
	Level int

	// Text is the heading text with markup stripped and whitespace trimmed.
	Text string
}

// CodeBlock is one preformatted or fenced code region.
type CodeBlock struct {
	// StartLine and EndLine bound the region, inclusive, including any
	// fence or tag lines.
	StartLine int
	EndLine   int

	// Info is the declared language tag, empty when untagged.
	Info string

	// Bare is true for regions with no fence or tag lines (indented
	// markdown blocks); every bounded line is content.
	Bare bool
}

// ContentLines returns the number of content lines inside the block,
// excluding fence or tag lines.
func (cb CodeBlock) ContentLines() int {
	n := cb.EndLine - cb.StartLine - 1
	if cb.Bare {
		n = cb.EndLine - cb.StartLine + 1
	}
	if n < 0 {
		return 0
	}
	return n
}

// Callout is one callout/admonition region.
type Callout struct {
	// Line is the 1-based line where the callout opens.
	Line int

	// Purpose is the callout kind: "info", "note", "warning", or "tip".
	Purpose string
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineText returns the content of a 1-based line, excluding the newline.
// Returns an empty string if the line number is out of range.
func (d *Document) LineText(line int) string {
	b := d.lineBytes(line)
	if b == nil {
		return ""
	}
	return string(b)
}

func (d *Document) lineBytes(line int) []byte {
	if line < 1 || line > len(d.Lines) {
		return nil
	}
	info := d.Lines[line-1]
	return d.Content[info.StartOffset:info.NewlineStart]
}

// IsBlank reports whether the line contains only whitespace.
func (d *Document) IsBlank(line int) bool {
	return len(bytes.TrimSpace(d.lineBytes(line))) == 0
}

// Blank reports whether the document has no non-blank lines. Blank
// documents are not worth checking: there is no content to have style.
func (d *Document) Blank() bool {
	for line := 1; line <= d.LineCount(); line++ {
		if !d.IsBlank(line) {
			return false
		}
	}
	return true
}

// InCode reports whether the line falls inside a code-exempt region.
func (d *Document) InCode(line int) bool {
	if line < 1 || line > len(d.Context) {
		return false
	}
	return d.Context[line-1].InCode
}

// CalloutAt returns the purpose of the callout enclosing the line, or "".
func (d *Document) CalloutAt(line int) string {
	if line < 1 || line > len(d.Context) {
		return ""
	}
	return d.Context[line-1].Callout
}

// HeadingLevelAt returns the heading depth at the line, or 0.
func (d *Document) HeadingLevelAt(line int) int {
	if line < 1 || line > len(d.Context) {
		return 0
	}
	return d.Context[line-1].HeadingLevel
}

// TagOnly reports whether the line consists solely of markup tags.
func (d *Document) TagOnly(line int) bool {
	if line < 1 || line > len(d.Context) {
		return false
	}
	return d.Context[line-1].TagOnly
}

// Prose reports whether the line should be checked by prose rules:
// non-blank, outside code regions, and not purely markup.
func (d *Document) Prose(line int) bool {
	return !d.IsBlank(line) && !d.InCode(line) && !d.TagOnly(line)
}
