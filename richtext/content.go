package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Content is a post body: a rich-text tree, or a legacy HTML string when Root is nil.
type Content struct {
	Root Node
	HTML string
}

func FromNode(n Node) Content { return Content{Root: n} }
func FromHTML(s string) Content { return Content{HTML: s} }
func (c Content) IsZero() bool { return c.Root == nil && c.HTML == "" }
func (c Content) String() string { return ExtractPlainText(c) }

type jsonNode struct {
	Text     *string           `json:"text,omitempty"`
	Children []json.RawMessage `json:"children,omitempty"`
	Root     json.RawMessage   `json:"root,omitempty"`
}

// UnmarshalJSON accepts "<p>html</p>", {"root": ...}, {"children": [...]},
// {"text": "..."} and bare arrays of nodes.
func (c *Content) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = Content{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &c.HTML)
	case '{', '[':
		n, err := decodeJSONNode(data, 0)
		if err != nil {
			return fmt.Errorf("richtext: %w", err)
		}
		c.Root = n
		return nil
	default:
		return fmt.Errorf("richtext: unsupported content of %d bytes", len(data))
	}
}

func decodeJSONNode(data []byte, depth int) (Node, error) {
	if depth > MaxDepth {
		return nil, nil
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return decodeChildren(items, depth)
	}

	var raw jsonNode
	if err := json.Unmarshal(data, &raw); err != nil {
		// Numbers, bools and the like are not nodes; they contribute nothing.
		return nil, nil
	}
	switch {
	case raw.Text != nil:
		return Leaf{Text: *raw.Text}, nil
	case raw.Children != nil:
		return decodeChildren(raw.Children, depth)
	case len(raw.Root) > 0:
		return decodeJSONNode(raw.Root, depth+1)
	}
	return nil, nil
}

func decodeChildren(items []json.RawMessage, depth int) (Node, error) {
	b := Branch{Children: make([]Node, 0, len(items))}
	for _, item := range items {
		n, err := decodeJSONNode(item, depth+1)
		if err != nil {
			return nil, err
		}
		if n != nil {
			b.Children = append(b.Children, n)
		}
	}
	return b, nil
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.Root == nil {
		if c.HTML == "" {
			return []byte("null"), nil
		}
		return json.Marshal(c.HTML)
	}
	return json.Marshal(struct {
		Root *wireNode `json:"root"`
	}{Root: toWire(c.Root, 0)})
}

// wireNode is the persisted and serialized shape of a Node.
type wireNode struct {
	Text     *string    `json:"text,omitempty" bson:"text,omitempty"`
	Children []wireNode `json:"children,omitempty" bson:"children,omitempty"`
}

type wireContent struct {
	Root *wireNode `bson:"root"`
}

func toWire(n Node, depth int) *wireNode {
	if depth > MaxDepth {
		return nil
	}
	switch v := n.(type) {
	case Leaf:
		text := v.Text
		return &wireNode{Text: &text}
	case Branch:
		w := &wireNode{Children: make([]wireNode, 0, len(v.Children))}
		for _, child := range v.Children {
			if cw := toWire(child, depth+1); cw != nil {
				w.Children = append(w.Children, *cw)
			}
		}
		return w
	}
	return nil
}

func fromWire(w *wireNode) Node {
	if w == nil {
		return nil
	}
	if w.Text != nil {
		return Leaf{Text: *w.Text}
	}
	b := Branch{Children: make([]Node, 0, len(w.Children))}
	for i := range w.Children {
		b.Children = append(b.Children, fromWire(&w.Children[i]))
	}
	return b
}

// MarshalBSONValue stores legacy HTML as a string and trees as {root: ...}.
func (c Content) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if c.Root == nil {
		if c.HTML == "" {
			return bsontype.Null, nil, nil
		}
		return bson.MarshalValue(c.HTML)
	}
	return bson.MarshalValue(wireContent{Root: toWire(c.Root, 0)})
}

func (c *Content) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*c = Content{}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		return nil
	case bsontype.String:
		return bson.RawValue{Type: t, Value: data}.Unmarshal(&c.HTML)
	case bsontype.EmbeddedDocument:
		var w wireContent
		if err := bson.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("richtext: %w", err)
		}
		c.Root = fromWire(w.Root)
		return nil
	default:
		return fmt.Errorf("richtext: cannot decode bson %s into content", t)
	}
}
