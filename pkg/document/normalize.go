package document

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupExtensions force the markup scan regardless of content shape.
var markupExtensions = map[string]bool{
	".xml":  true,
	".html": true,
	".htm":  true,
}

// Normalize converts raw content into a Document. It never fails: markup
// that cannot be interpreted structurally is still analyzed line by line.
func Normalize(path string, content []byte) *Document {
	doc := &Document{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
	doc.Context = make([]LineContext, len(doc.Lines))

	if looksLikeMarkup(path, content) {
		doc.Markup = true
		scanMarkup(doc)
		doc.inspectNodes()
	} else {
		scanMarkdown(doc)
	}

	return doc
}

func looksLikeMarkup(path string, content []byte) bool {
	if markupExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}
	if !tagRe.Match(content) {
		return false
	}
	return bytes.Contains(content, []byte("</")) || bytes.Contains(content, []byte("/>"))
}

// inspectNodes runs a whole-document parse for facts that need node-level
// structure rather than line context. Line numbers are not available at
// this level, so the corresponding findings anchor to line 1.
func (d *Document) inspectNodes() {
	q, err := goquery.NewDocumentFromReader(bytes.NewReader(d.Content))
	if err != nil {
		return
	}

	q.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if alt, ok := sel.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			d.ImagesMissingAlt++
		}
	})
	q.Find(`ac\:image`).Each(func(_ int, sel *goquery.Selection) {
		if alt, ok := sel.Attr("ac:alt"); !ok || strings.TrimSpace(alt) == "" {
			d.ImagesMissingAlt++
		}
	})

	if !d.HasTOCMacro {
		q.Find(`ac\:structured-macro`).Each(func(_ int, sel *goquery.Selection) {
			if name, _ := sel.Attr("ac:name"); strings.EqualFold(name, "toc") {
				d.HasTOCMacro = true
			}
		})
	}
}
