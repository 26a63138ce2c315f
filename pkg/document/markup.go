package document

import (
	"regexp"
	"strings"
)

// The markup scanner is deliberately tolerant: it never rejects input.
// Unclosed tags, stray closers, and broken nesting degrade to plain-text
// treatment of the affected lines instead of a parse error, and every
// line keeps its original 1-based number.

var (
	tagRe       = regexp.MustCompile(`<(/?)([A-Za-z][A-Za-z0-9:_.-]*)((?:"[^"]*"|'[^']*'|[^>"'])*)(/?)>`)
	macroNameRe = regexp.MustCompile(`ac:name\s*=\s*["']([^"']*)["']`)
	classRe     = regexp.MustCompile(`class\s*=\s*["']([^"']*)["']`)
	langParamRe = regexp.MustCompile(`<ac:parameter[^>]*ac:name\s*=\s*["']language["'][^>]*>([^<]*)`)
	fenceRe     = regexp.MustCompile("^```\\s*([A-Za-z0-9_+.-]*)")
)

var calloutPurposes = map[string]string{
	"info":       "info",
	"note":       "note",
	"warning":    "warning",
	"caution":    "warning",
	"tip":        "tip",
	"admonition": "note",
	"callout":    "note",
}

type openRegion struct {
	tag     string
	code    bool
	callout string
	heading int
	start   int
}

type markupScanner struct {
	doc     *Document
	stack   []openRegion
	fence   bool // inside a ``` fence
	comment bool // inside an HTML comment

	headingBuf   strings.Builder
	headingLine  int
	headingLevel int

	// Per-line observations, so regions opened and closed within one line
	// still mark that line's context.
	lineHeading int
	lineCallout string
	lineCode    bool

	blockStart int    // open code region start line, 0 when none
	blockInfo  string // pending language for the open code region
}

// scanMarkup fills Context, Headings, CodeBlocks, and Callouts for a
// document whose content contains XML/HTML markup.
func scanMarkup(doc *Document) {
	s := &markupScanner{doc: doc}
	for i := range doc.Lines {
		s.scanLine(i + 1)
	}
	s.closeBlock(len(doc.Lines))
	s.flushHeading()
}

func (s *markupScanner) scanLine(line int) {
	text := s.doc.LineText(line)
	ctx := &s.doc.Context[line-1]

	startCode := s.inCode()
	startCallout := s.calloutPurpose()
	startHeading := s.headingDepth()
	s.lineHeading = 0
	s.lineCallout = ""
	s.lineCode = false

	if s.comment {
		ctx.TagOnly = true
		if end := strings.Index(text, "-->"); end >= 0 {
			s.comment = false
			text = text[end+3:]
		} else {
			ctx.InCode = startCode
			ctx.Callout = startCallout
			return
		}
	}

	// Fences toggle code regions even inside markup documents.
	if !startCode {
		if m := fenceRe.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
			if s.fence {
				s.fence = false
				s.closeBlock(line)
			} else {
				s.fence = true
				s.openBlock(line, m[1])
			}
			ctx.InCode = true
			return
		}
	}
	if s.fence {
		ctx.InCode = true
		return
	}

	if m := langParamRe.FindStringSubmatch(text); m != nil && s.blockStart > 0 {
		s.blockInfo = strings.TrimSpace(m[1])
	}

	textRuns := s.processTags(text, line)

	ctx.InCode = startCode || s.inCode() || s.lineCode
	switch {
	case s.calloutPurpose() != "":
		ctx.Callout = s.calloutPurpose()
	case s.lineCallout != "":
		ctx.Callout = s.lineCallout
	default:
		ctx.Callout = startCallout
	}
	if h := max(startHeading, s.headingDepth(), s.lineHeading); h > 0 {
		ctx.HeadingLevel = h
	}
	ctx.TagOnly = strings.ContainsRune(text, '<') && strings.TrimSpace(textRuns) == ""
}

// processTags walks every tag on the line, updating region state, and
// returns the concatenated text content between tags.
func (s *markupScanner) processTags(text string, line int) string {
	var runs strings.Builder
	pos := 0

	for {
		rest := text[pos:]
		ci := strings.Index(rest, "<!--")
		loc := tagRe.FindStringSubmatchIndex(rest)

		if ci >= 0 && (loc == nil || ci < loc[0]) {
			s.appendText(rest[:ci], &runs, line)
			if end := strings.Index(rest[ci:], "-->"); end >= 0 {
				pos += ci + end + 3
				continue
			}
			s.comment = true
			return runs.String()
		}

		if loc == nil {
			s.appendText(rest, &runs, line)
			return runs.String()
		}

		s.appendText(rest[:loc[0]], &runs, line)

		closing := rest[loc[2]:loc[3]] == "/"
		name := strings.ToLower(rest[loc[4]:loc[5]])
		attrs := rest[loc[6]:loc[7]]
		selfClose := rest[loc[8]:loc[9]] == "/"

		switch {
		case closing:
			s.closeTag(name, line)
		case selfClose || voidTags[name]:
			// no region change
		default:
			s.openTag(name, attrs, line)
		}
		pos += loc[1]
	}
}

func (s *markupScanner) appendText(t string, runs *strings.Builder, line int) {
	if s.headingDepth() > 0 && strings.TrimSpace(t) != "" {
		if s.headingBuf.Len() == 0 {
			s.headingLine = line
		} else {
			s.headingBuf.WriteByte(' ')
		}
		s.headingBuf.WriteString(strings.TrimSpace(t))
	}
	runs.WriteString(t)
}

var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true,
	"link": true, "area": true, "base": true, "col": true, "embed": true,
	"source": true, "track": true, "wbr": true,
}

func (s *markupScanner) openTag(name, attrs string, line int) {
	r := openRegion{tag: name, start: line}

	switch {
	case len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6':
		r.heading = int(name[1] - '0')
		s.headingLevel = r.heading
	case name == "pre":
		r.code = true
	case name == "ac:structured-macro", name == "structured-macro":
		macro := ""
		if m := macroNameRe.FindStringSubmatch(attrs); m != nil {
			macro = strings.ToLower(m[1])
		}
		switch {
		case macro == "code" || macro == "noformat":
			r.code = true
		case calloutPurposes[macro] != "":
			r.callout = calloutPurposes[macro]
		case macro == "toc":
			s.doc.HasTOCMacro = true
		}
	case name == "div" || name == "aside" || name == "section":
		if m := classRe.FindStringSubmatch(attrs); m != nil {
			class := strings.ToLower(m[1])
			for key, purpose := range calloutPurposes {
				if strings.Contains(class, key) {
					r.callout = purpose
					break
				}
			}
		}
	}

	if r.heading > s.lineHeading {
		s.lineHeading = r.heading
	}
	if r.code {
		s.lineCode = true
		if !s.inCode() {
			s.openBlock(line, "")
		}
	}
	if r.callout != "" {
		s.lineCallout = r.callout
		s.doc.Callouts = append(s.doc.Callouts, Callout{Line: line, Purpose: r.callout})
	}
	s.stack = append(s.stack, r)
}

func (s *markupScanner) closeTag(name string, line int) {
	// Pop to the matching open tag; ignore closers that match nothing so a
	// stray </div> cannot poison the rest of the document.
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].tag != name {
			continue
		}
		popped := s.stack[i:]
		s.stack = s.stack[:i]
		for _, r := range popped {
			if r.heading > 0 {
				s.flushHeading()
			}
			if r.code && !s.inCode() {
				s.closeBlock(line)
			}
		}
		return
	}
}

func (s *markupScanner) inCode() bool {
	for _, r := range s.stack {
		if r.code {
			return true
		}
	}
	return false
}

func (s *markupScanner) calloutPurpose() string {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].callout != "" {
			return s.stack[i].callout
		}
	}
	return ""
}

func (s *markupScanner) headingDepth() int {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].heading > 0 {
			return s.stack[i].heading
		}
	}
	return 0
}

func (s *markupScanner) flushHeading() {
	text := strings.TrimSpace(s.headingBuf.String())
	if text != "" {
		level := s.headingLevel
		if level == 0 {
			level = 1
		}
		s.doc.Headings = append(s.doc.Headings, Heading{
			Line:  s.headingLine,
			Level: level,
			Text:  text,
		})
	}
	s.headingBuf.Reset()
	s.headingLine = 0
	s.headingLevel = 0
}

func (s *markupScanner) openBlock(line int, info string) {
	s.blockStart = line
	s.blockInfo = info
}

func (s *markupScanner) closeBlock(line int) {
	if s.blockStart == 0 {
		return
	}
	s.doc.CodeBlocks = append(s.doc.CodeBlocks, CodeBlock{
		StartLine: s.blockStart,
		EndLine:   line,
		Info:      s.blockInfo,
	})
	s.blockStart = 0
	s.blockInfo = ""
}
