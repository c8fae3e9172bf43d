package richtext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// MaxDepth bounds tree recursion. Nodes below it contribute nothing, which
// also makes self-referencing trees terminate.
const MaxDepth = 256

// ExtractPlainText flattens the content to plain text. It never fails:
// absent or malformed input yields "".
func ExtractPlainText(c Content) string {
	if c.Root != nil {
		return ExtractNode(c.Root)
	}
	if c.HTML != "" {
		return stripMarkup(c.HTML)
	}
	return ""
}

// ExtractNode flattens a tree depth-first. A Leaf contributes its text and a
// Branch the space-joined text of its non-empty children.
func ExtractNode(n Node) string {
	return extract(n, 0)
}

func extract(n Node, depth int) string {
	if depth > MaxDepth {
		return ""
	}
	switch v := n.(type) {
	case Leaf:
		return v.Text
	case Branch:
		parts := make([]string, 0, len(v.Children))
		for _, child := range v.Children {
			if s := extract(child, depth+1); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// stripMarkup drops tags (and script/style bodies), decodes entities and trims.
func stripMarkup(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return ""
			}
			return strings.TrimSpace(b.String())
		case html.StartTagToken:
			if isRawTextTag(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawTextTag(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}
