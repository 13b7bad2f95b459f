package ui

import (
	_ "embed"
	"strings"
)

const (
	defaultFontSize = 20
	// Layout does not load fonts; text is measured with a fixed advance so hit testing works without a window.
	charAdvance = 0.5  // glyph width as a fraction of font size
	lineSpacing = 4    // extra pixels between lines
	maxChars    = 2000 // hard cap on wrapped line length
)

//go:embed overlay.css
var overlayCSS string

// DefaultStylesheet returns the stylesheet for the portfolio overlay.
func DefaultStylesheet() *Stylesheet {
	return MustParseCSS(overlayCSS)
}

// Document is the overlay drawn on top of the 3D view. Roots are drawn in order; the last root is on top.
// Styles and bounds are recomputed whenever a root is added or the viewport changes.
type Document struct {
	sheet  *Stylesheet
	roots  []*Node
	width  float32
	height float32
}

// NewDocument returns an empty document for a w×h viewport. A nil sheet means no styling.
func NewDocument(sheet *Stylesheet, w, h int) *Document {
	if sheet == nil {
		sheet = &Stylesheet{}
	}
	return &Document{sheet: sheet, width: float32(w), height: float32(h)}
}

// Resize sets the viewport size and re-lays out every root.
func (d *Document) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	d.width, d.height = float32(w), float32(h)
	d.Layout()
}

// Size returns the viewport size.
func (d *Document) Size() (w, h float32) {
	return d.width, d.height
}

// Append adds a root node on top of the others and lays it out.
func (d *Document) Append(n *Node) {
	d.roots = append(d.roots, n)
	d.layoutRoot(n)
}

// Remove deletes the root with the given id. It reports whether one was removed.
func (d *Document) Remove(id string) bool {
	for i, n := range d.roots {
		if n.ID == id {
			d.roots = append(d.roots[:i], d.roots[i+1:]...)
			return true
		}
	}
	return false
}

// ByID returns the first node anywhere in the document with the given id.
func (d *Document) ByID(id string) *Node {
	for _, r := range d.roots {
		if f := r.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// Count returns how many nodes in the document carry id. Panels rely on this staying at most one.
func (d *Document) Count(id string) int {
	n := 0
	for _, r := range d.roots {
		r.Walk(func(c *Node) {
			if c.ID == id {
				n++
			}
		})
	}
	return n
}

// Roots returns the root nodes in draw order.
func (d *Document) Roots() []*Node {
	return d.roots
}

// HitTest returns the topmost node under (x, y): the deepest clickable node if there is one,
// otherwise the root whose box contains the point. nil means the point is over the 3D view.
func (d *Document) HitTest(x, y float32) *Node {
	for i := len(d.roots) - 1; i >= 0; i-- {
		r := d.roots[i]
		if r.Computed.Hidden {
			continue
		}
		if c := clickableAt(r, x, y); c != nil {
			return c
		}
		if r.Bounds.Contains(x, y) {
			return r
		}
	}
	return nil
}

func clickableAt(n *Node, x, y float32) *Node {
	if n.Computed.Hidden {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if c := clickableAt(n.Children[i], x, y); c != nil {
			return c
		}
	}
	if n.OnClick != nil && n.Bounds.Contains(x, y) {
		return n
	}
	return nil
}

// Click dispatches a click at (x, y). It reports whether the overlay consumed it.
func (d *Document) Click(x, y float32) bool {
	n := d.HitTest(x, y)
	if n == nil {
		return false
	}
	if n.OnClick != nil {
		n.OnClick()
	}
	return true
}

// Layout recomputes styles and bounds of every root.
func (d *Document) Layout() {
	for _, r := range d.roots {
		d.layoutRoot(r)
	}
}

func (d *Document) resolve(n *Node) {
	merged := make(map[string]string)
	for _, rule := range d.sheet.Rules {
		if n.matches(rule.Selector) {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	for k, v := range n.Style {
		merged[k] = v
	}
	n.Computed = ResolveProps(merged)
	for _, c := range n.Children {
		d.resolve(c)
	}
}

func (d *Document) layoutRoot(n *Node) {
	d.resolve(n)
	st := n.Computed
	w := natural(n)
	if st.Width.Set {
		w = st.Width.Resolve(d.width)
	}
	if st.MaxWidth > 0 && w > st.MaxWidth {
		w = st.MaxWidth
	}
	if w > d.width {
		w = d.width
	}
	x := st.Left.Resolve(d.width)
	if st.CenterX {
		x -= w / 2
	}
	h := layout(n, x, 0, w)
	y := st.Top.Resolve(d.height)
	if st.Bottom.Set && !st.Top.Set {
		y = d.height - st.Bottom.Resolve(d.height) - h
	}
	translate(n, 0, y)
}

// natural returns the width n wants without wrapping. Percentage widths contribute nothing.
func natural(n *Node) float32 {
	st := n.Computed
	if st.Hidden {
		return 0
	}
	if st.Width.Set && !st.Width.Pct {
		return st.Width.Value
	}
	text := float32(len([]rune(n.Text))) * charWidth(st)
	var kids float32
	for i, c := range n.Children {
		cw := natural(c)
		if st.Horizontal {
			kids += cw
			if i > 0 {
				kids += st.Gap
			}
		} else if cw > kids {
			kids = cw
		}
	}
	return max(text, kids) + 2*st.Padding
}

// layout places n at (x, y) with the given width and returns its height.
func layout(n *Node, x, y, width float32) float32 {
	st := n.Computed
	if st.Hidden {
		n.Bounds = Rect{X: x, Y: y}
		n.Lines = nil
		return 0
	}
	inner := max(width-2*st.Padding, 0)
	n.Lines = wrap(n.Text, inner, charWidth(st))
	cy := y + st.Padding + float32(len(n.Lines))*lineHeight(st)
	cx := x + st.Padding
	var rowH float32
	for i, c := range n.Children {
		cw := childWidth(c, inner, st.Horizontal)
		if st.Horizontal {
			if i > 0 {
				cx += st.Gap
			}
			rowH = max(rowH, layout(c, cx, cy, cw))
			cx += cw
			continue
		}
		if i > 0 {
			cy += st.Gap
		}
		cy += layout(c, cx, cy, cw)
	}
	cy += rowH
	h := cy - y + st.Padding
	if st.Height > 0 {
		h = st.Height
	}
	n.Bounds = Rect{X: x, Y: y, Width: width, Height: h}
	return h
}

func childWidth(c *Node, inner float32, row bool) float32 {
	st := c.Computed
	switch {
	case st.Width.Set:
		return min(st.Width.Resolve(inner), inner)
	case row:
		return natural(c)
	default:
		return inner
	}
}

func translate(n *Node, dx, dy float32) {
	n.Walk(func(c *Node) {
		c.Bounds.X += dx
		c.Bounds.Y += dy
	})
}

func charWidth(st ComputedStyle) float32 {
	return st.FontSize * charAdvance
}

func lineHeight(st ComputedStyle) float32 {
	return st.FontSize + lineSpacing
}

// LineHeight is the vertical advance between wrapped lines of n.
func (n *Node) LineHeight() float32 {
	return lineHeight(n.Computed)
}

// wrap breaks text into lines no wider than width, splitting on spaces. Words longer than a line are cut.
func wrap(text string, width, advance float32) []string {
	if text == "" {
		return nil
	}
	limit := maxChars
	if advance > 0 {
		limit = max(int(width/advance), 1)
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > limit {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:limit]))
			w = w[limit:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= limit:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), w...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
