package fs

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aretw0/capstone/pkg/core"
)

var markdown = goldmark.New()

// notebookTitle returns the first level-1 heading found in the markdown cells.
func notebookTitle(cells []core.Cell) string {
	for _, cell := range cells {
		if cell.Type != core.CellMarkdown {
			continue
		}
		if title := firstHeading([]byte(cell.Source), 1); title != "" {
			return title
		}
	}
	return ""
}

// firstHeading parses source as markdown and returns the text of the first heading of the given level.
func firstHeading(source []byte, level int) string {
	doc := markdown.Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != level {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(inlineText(h, source))
		if title == "" {
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkStop, nil
	})
	return title
}

func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
