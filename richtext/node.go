// Package richtext models the editor's document tree and flattens it to text.
package richtext

// Node is either a Leaf or a Branch.
type Node interface {
	isNode()
}

// Leaf carries text.
type Leaf struct {
	Text string
}

// Branch groups child nodes (paragraphs, lists, the document root).
type Branch struct {
	Children []Node
}

func (Leaf) isNode() {}
func (Branch) isNode() {}

// Text is shorthand for a Leaf.
func Text(s string) Node { return Leaf{Text: s} }

// Group is shorthand for a Branch.
func Group(children ...Node) Node { return Branch{Children: children} }
