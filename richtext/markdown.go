package richtext

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Strikethrough,
		extension.Table,
	),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// RenderMarkdown renders markdown to HTML. Raw HTML in the source is not emitted.
func RenderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FromMarkdown converts markdown into a document tree: every block becomes a
// Branch and the inline text of a paragraph or heading a single Leaf.
func FromMarkdown(src []byte) Node {
	doc := md.Parser().Parse(text.NewReader(src))
	n := fromBlock(doc, src, 0)
	if n == nil {
		return Branch{}
	}
	return n
}

func fromBlock(n ast.Node, src []byte, depth int) Node {
	if depth > MaxDepth {
		return nil
	}
	switch n.Kind() {
	case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
		var b strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(src))
		}
		s := strings.TrimRight(b.String(), "\n")
		if s == "" {
			return nil
		}
		return Leaf{Text: s}
	case ast.KindThematicBreak:
		return nil
	}

	if first := n.FirstChild(); first != nil && first.Type() == ast.TypeInline {
		s := strings.TrimSpace(inlineText(n, src))
		if s == "" {
			return nil
		}
		return Leaf{Text: s}
	}

	b := Branch{}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if child := fromBlock(c, src, depth+1); child != nil {
			b.Children = append(b.Children, child)
		}
	}
	return b
}

func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
