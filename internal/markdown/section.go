// ABOUTME: Block-level section splitting for markdown-ish analysis text.
// ABOUTME: Uses goldmark to parse headings and bodies into ordered sections.

package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section is a heading plus the body text that follows it, the atomic unit
// for chunking. A document with no headings yields a single section whose
// Heading is empty and Level is zero.
type Section struct {
	Heading string
	Level   int
	Body    string
}

// Render returns the section as markdown: the heading line reconstructed
// with its original nesting level, followed by the body.
func (s Section) Render() string {
	if s.Heading == "" && s.Level == 0 {
		return s.Body
	}
	head := strings.Repeat("#", s.Level) + " " + s.Heading
	if s.Body == "" {
		return head
	}
	return head + "\n" + s.Body
}

var mdParser = goldmark.New()

// Sectionize performs a block-level parse of md and returns its sections in
// document order. Every heading opens a new section; all other blocks
// contribute their lines to the open section's body. Consecutive headings
// produce sections with empty bodies. Malformed markdown never fails; at
// worst content is carried as plain body text.
func Sectionize(md string) []Section {
	src := []byte(md)
	doc := mdParser.Parser().Parse(text.NewReader(src))

	var sections []Section
	current := Section{}
	opened := false
	var body []string

	flush := func() {
		if !opened && len(body) == 0 {
			return
		}
		current.Body = strings.Join(body, "\n")
		sections = append(sections, current)
		current = Section{}
		body = nil
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() == ast.KindDocument {
			return ast.WalkContinue, nil
		}

		if h, ok := n.(*ast.Heading); ok {
			flush()
			current = Section{
				Heading: string(blockText(h, src)),
				Level:   h.Level,
			}
			opened = true
			return ast.WalkSkipChildren, nil
		}

		// Any other block that carries source lines (paragraphs, list item
		// text, code) appends them to the open section, one per line.
		if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				body = append(body, strings.TrimRight(string(seg.Value(src)), "\n"))
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	flush()

	if len(sections) == 0 {
		sections = []Section{{}}
	}
	return sections
}

// blockText joins the raw source lines of a block node.
func blockText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimRight(b.String(), "\n")
}
