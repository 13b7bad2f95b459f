package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-3

func near(a, b float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func TestDefaultEye(t *testing.T) {
	c := New(800, 600)
	p := c.Position()
	if !near(p[0], 0) || !near(p[1], 5) || !near(p[2], 25) {
		t.Errorf("Position() = %v, want (0, 5, 25)", p)
	}
}

func TestProjectTargetIsCentre(t *testing.T) {
	c := New(1280, 720)
	ndc := c.Project(mgl32.Vec3{})
	if !near(ndc[0], 0) || !near(ndc[1], 0) {
		t.Errorf("Project(origin) = %v, want screen centre", ndc)
	}
}

func TestNDC(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float32
		w, h         int
		wantX, wantY float32
	}{
		{"top-left", 0, 0, 800, 600, -1, 1},
		{"bottom-right", 800, 600, 800, 600, 1, -1},
		{"centre", 400, 300, 800, 600, 0, 0},
		{"quarter", 200, 450, 800, 600, -0.5, -0.5},
		{"zero viewport", 10, 10, 0, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := NDC(tc.x, tc.y, tc.w, tc.h)
			if !near(x, tc.wantX) || !near(y, tc.wantY) {
				t.Errorf("NDC() = (%v, %v), want (%v, %v)", x, y, tc.wantX, tc.wantY)
			}
			if tc.w == 0 {
				return
			}
			sx, sy := ScreenFromNDC(x, y, tc.w, tc.h)
			if !near(sx, tc.x) || !near(sy, tc.y) {
				t.Errorf("ScreenFromNDC() = (%v, %v), want (%v, %v)", sx, sy, tc.x, tc.y)
			}
		})
	}
}

func TestRayHitsProjectedPoint(t *testing.T) {
	c := New(1024, 768)
	pts := []mgl32.Vec3{{0, 0, 0}, {20, -2, 0}, {-10, -2, 17.3}, {3, 4, -5}}
	for _, p := range pts {
		ndc := c.Project(p)
		r := c.Ray(ndc[0], ndc[1])
		if !near(r.Dir.Len(), 1) {
			t.Errorf("ray dir not unit: %v", r.Dir)
		}
		want := p.Sub(r.Origin).Normalize()
		if r.Dir.Dot(want) < 0.9999 {
			t.Errorf("ray through projection of %v points %v, want %v", p, r.Dir, want)
		}
	}
}

func TestResizeChangesProjection(t *testing.T) {
	c := New(800, 600)
	before := c.Projection()
	c.Resize(1600, 600)
	if w, h := c.Viewport(); w != 1600 || h != 600 {
		t.Errorf("Viewport() = %dx%d, want 1600x600", w, h)
	}
	if !near(c.Aspect(), 1600.0/600.0) {
		t.Errorf("Aspect() = %v", c.Aspect())
	}
	after := c.Projection()
	if before.ApproxEqual(after) {
		t.Error("projection unchanged after resize")
	}
	c.Resize(0, 0)
	if w, h := c.Viewport(); w != 1600 || h != 600 {
		t.Errorf("zero resize changed viewport to %dx%d", w, h)
	}
}

func TestOrbitDamping(t *testing.T) {
	c := New(800, 600)
	start := c.Position()
	c.Rotate(100, 0)
	c.Update()
	first := c.Position()
	if first.ApproxEqual(start) {
		t.Fatal("camera did not move after Rotate+Update")
	}
	for i := 0; i < 1000; i++ {
		c.Update()
	}
	settled := c.Position()
	c.Update()
	if !c.Position().ApproxEqual(settled) {
		t.Error("inertia did not decay")
	}
	if r := c.Position().Sub(c.Target()).Len(); !near(r, start.Len()) {
		t.Errorf("orbit radius changed: %v vs %v", r, start.Len())
	}
}

func TestPitchClamped(t *testing.T) {
	c := New(800, 600)
	c.Rotate(0, 1e5)
	for i := 0; i < 500; i++ {
		c.Update()
	}
	if p := c.Position(); p[1] >= c.Position().Sub(c.Target()).Len() {
		t.Errorf("camera reached the pole: %v", p)
	}
}
