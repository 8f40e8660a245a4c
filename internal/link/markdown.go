package link

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// MaskCodeRegions blanks out fenced code blocks and inline code spans so
// that link/tag scanning never matches inside them. Indented blocks are NOT
// masked: notes are plain text, where indented prose and quoted material
// are ordinary content, not code.
// Newlines are preserved, so byte offsets and line numbers stay valid.
func MaskCodeRegions(source string) string {
	if len(source) == 0 {
		return source
	}

	src := []byte(source)
	doc := markdown.Parser().Parse(text.NewReader(src))

	masked := []byte(source)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				maskRange(masked, seg.Start, seg.Stop)
			}
		case *ast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					maskRange(masked, t.Segment.Start, t.Segment.Stop)
				}
			}
		}
		return ast.WalkContinue, nil
	})

	return string(masked)
}

// maskRange overwrites a byte range with spaces, keeping newlines.
func maskRange(buf []byte, start, stop int) {
	if start < 0 {
		start = 0
	}
	if stop > len(buf) {
		stop = len(buf)
	}
	for i := start; i < stop; i++ {
		if buf[i] != '\n' {
			buf[i] = ' '
		}
	}
}
