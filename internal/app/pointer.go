package app

import "portfolio3d/internal/ui"

// ClickSlop is how far, in pixels, the pointer may travel between press and release and still count as a click.
const ClickSlop = 5

type pointer struct {
	down     bool
	pressed  *ui.Node // overlay node under the press; nil over the 3D view. Never orbits when set.
	dragging bool
	startX   float32
	startY   float32
	lastX    float32
	lastY    float32
}

func (p *pointer) within(x, y float32) bool {
	dx, dy := x-p.startX, y-p.startY
	return dx*dx+dy*dy <= ClickSlop*ClickSlop
}

// Pointer feeds the primary button state at window pixel (x, y) once per frame.
// A release within ClickSlop of the press, over the same overlay node if the press hit one, is a Click.
// Longer motion that started over the 3D view orbits the camera.
func (a *App) Pointer(x, y float32, down bool) {
	p := &a.ptr
	switch {
	case down && !p.down:
		*p = pointer{down: true, startX: x, startY: y, lastX: x, lastY: y}
		p.pressed = a.doc.HitTest(x, y)
	case down:
		if !p.dragging && p.pressed == nil {
			p.dragging = !p.within(x, y)
		}
		if p.dragging {
			a.Drag(x-p.lastX, y-p.lastY)
		}
		p.lastX, p.lastY = x, y
	case p.down:
		click := !p.dragging && p.within(x, y)
		if p.pressed != nil && a.doc.HitTest(x, y) != p.pressed {
			click = false
		}
		if click {
			a.Click(x, y)
		}
		a.ptr = pointer{}
	}
}
