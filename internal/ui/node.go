package ui

import "strings"

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Node is a single overlay element: panel, heading, text line, button, meter, etc.
// Class (space-separated) and ID are matched by stylesheet rules; Type matches tag selectors.
// Style holds inline declarations and wins over the stylesheet. Bounds and Lines are filled by layout.
type Node struct {
	Type     string
	Class    string
	ID       string
	Text     string
	Attrs    map[string]string
	Style    map[string]string
	Children []*Node
	OnClick  func()

	Bounds   Rect
	Computed ComputedStyle
	Lines    []string // Text wrapped to the laid-out width
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// Append adds children in order and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetStyle sets one inline declaration.
func (n *Node) SetStyle(key, value string) *Node {
	if n.Style == nil {
		n.Style = make(map[string]string)
	}
	n.Style[key] = value
	return n
}

// HasClass reports whether class is one of n's classes.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first node in n's subtree (n included) with the given id.
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// FindClass returns all nodes in n's subtree carrying class, in document order.
func (n *Node) FindClass(class string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) {
		if c.HasClass(class) {
			out = append(out, c)
		}
	})
	return out
}

// Walk visits n and its descendants depth-first in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// TextContent concatenates the text of n and its descendants, space-separated.
func (n *Node) TextContent() string {
	var parts []string
	n.Walk(func(c *Node) {
		if c.Text != "" {
			parts = append(parts, c.Text)
		}
	})
	return strings.Join(parts, " ")
}

func (n *Node) matches(sel string) bool {
	switch {
	case len(sel) > 1 && sel[0] == '.':
		return n.HasClass(sel[1:])
	case len(sel) > 1 && sel[0] == '#':
		return n.ID == sel[1:]
	default:
		return sel != "" && n.Type == sel
	}
}
