package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio3d/internal/ui"
)

const roundSegments = 8

// DrawDocument draws every root in order so later roots sit on top. Layout must be current;
// the document re-lays itself out on every mutation and resize.
func (r *Renderer) DrawDocument(doc *ui.Document) {
	for _, n := range doc.Roots() {
		r.drawNode(n)
	}
}

func (r *Renderer) drawNode(n *ui.Node) {
	st := n.Computed
	if st.Hidden {
		return
	}
	b := n.Bounds
	rec := rl.NewRectangle(b.X, b.Y, b.Width, b.Height)
	if st.Background.A > 0 && b.Width > 0 && b.Height > 0 {
		if st.Radius > 0 {
			rl.DrawRectangleRounded(rec, roundness(st.Radius, b), roundSegments, st.Background)
		} else {
			rl.DrawRectangleRec(rec, st.Background)
		}
	}
	if st.HasBorder && b.Width > 0 && b.Height > 0 {
		if st.Radius > 0 {
			rl.DrawRectangleRoundedLinesEx(rec, roundness(st.Radius, b), roundSegments, 1, st.Border)
		} else {
			rl.DrawRectangleLinesEx(rec, 1, st.Border)
		}
	}
	x, y := b.X+st.Padding, b.Y+st.Padding
	for i, line := range n.Lines {
		r.drawText(line, x, y+float32(i)*n.LineHeight(), st.FontSize, st)
	}
	for _, c := range n.Children {
		r.drawNode(c)
	}
}

func (r *Renderer) drawText(text string, x, y, size float32, st ui.ComputedStyle) {
	if r.font.Texture.ID != 0 {
		rl.DrawTextEx(r.font, text, rl.NewVector2(x, y), size, 1, st.Color)
		return
	}
	rl.DrawText(text, int32(x), int32(y), int32(size), st.Color)
}

// roundness converts a pixel radius to raylib's 0..1 fraction of the shorter side.
func roundness(radius float32, b ui.Rect) float32 {
	short := min(b.Width, b.Height)
	if short <= 0 {
		return 0
	}
	return min(2*radius/short, 1)
}
