package app

import (
	"strings"
	"testing"

	"portfolio3d/internal/camera"
	"portfolio3d/internal/content"
	"portfolio3d/internal/logger"
	"portfolio3d/internal/panel"
)

func newApp(t *testing.T, w, h int) *App {
	t.Helper()
	return New(Options{Width: w, Height: h, Seed: 42}, content.Default(), logger.Discard())
}

func TestIslandCategoriesInCatalog(t *testing.T) {
	a := newApp(t, 1280, 720)
	cat := content.Default()
	seen := make(map[string]bool)
	for _, isl := range a.Scene().Islands() {
		if !cat.Has(isl.Category) {
			t.Errorf("island %d category %q not in catalog", isl.ID, isl.Category)
		}
		if seen[isl.Category] {
			t.Errorf("category %q used twice", isl.Category)
		}
		seen[isl.Category] = true
	}
	if len(seen) != 6 {
		t.Errorf("distinct categories = %d, want 6", len(seen))
	}
}

func TestEndToEndClickIsland(t *testing.T) {
	a := newApp(t, 1280, 720)
	s := a.Scene()
	if len(s.Islands()) != 6 || len(s.Projects()) != 3 || s.Avatar() == nil || s.Particles().Len() != 400 {
		t.Fatalf("world = %d islands, %d projects, avatar %v, %d particles",
			len(s.Islands()), len(s.Projects()), s.Avatar() != nil, s.Particles().Len())
	}
	for i := 0; i < 30; i++ {
		a.Frame(1.0 / 60)
	}

	isl := s.Islands()[2]
	ndc := a.Camera().Project(isl.Position)
	x, y := camera.ScreenFromNDC(ndc[0], ndc[1], 1280, 720)
	if !a.Click(x, y) {
		t.Fatalf("click at island 2 (%v, %v) not handled", x, y)
	}

	doc := a.Document()
	if n := doc.Count(panel.SkillPanelID); n != 1 {
		t.Fatalf("skill panels = %d, want 1", n)
	}
	p := doc.ByID(panel.SkillPanelID)
	if got := p.Children[0].Text; got != "Game Dev" {
		t.Errorf("title = %q, want Game Dev", got)
	}
	if got := p.FindClass("skill-meter-fill")[0].Style["width"]; got != "80%" {
		t.Errorf("meter width = %q, want 80%%", got)
	}
}

func TestClickEmptySpaceLeavesPanels(t *testing.T) {
	a := newApp(t, 1280, 720)
	a.Frame(0.016)
	a.Press(ContactBtn)
	before := a.Document().ByID("text-panel")
	if a.Click(640, 2) {
		t.Error("click on empty sky reported handled")
	}
	if a.Document().ByID(panel.SkillPanelID) != nil {
		t.Error("skill panel appeared after empty click")
	}
	if a.Document().ByID("text-panel") != before {
		t.Error("text panel changed after empty click")
	}
}

func TestButtonsOpenTextPanels(t *testing.T) {
	a := newApp(t, 1280, 720)
	tests := []struct {
		id   string
		want string
	}{
		{SkillsBtn, "My Skills"},
		{ProjectsBtn, "My Projects"},
		{ContactBtn, "Contact Me"},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			btn := a.Document().ByID(tc.id)
			if btn == nil {
				t.Fatalf("no button %s", tc.id)
			}
			if !a.Click(btn.Bounds.X+2, btn.Bounds.Y+2) {
				t.Fatalf("click on %s not handled", tc.id)
			}
			if n := a.Document().Count(panel.TextPanelID); n != 1 {
				t.Fatalf("text panels = %d, want 1", n)
			}
			if got := a.Document().ByID(panel.TextPanelID).TextContent(); !strings.Contains(got, tc.want) {
				t.Errorf("text panel = %q, want %q", got, tc.want)
			}
		})
	}
	if a.Press("missing-btn") {
		t.Error("Press on unknown id should fail")
	}
}

func TestResize(t *testing.T) {
	a := newApp(t, 800, 600)
	a.Press(SkillsBtn)
	a.Resize(1920, 1080)
	if w, h := a.Camera().Viewport(); w != 1920 || h != 1080 {
		t.Errorf("camera viewport = %dx%d", w, h)
	}
	if asp := a.Camera().Aspect(); asp < 1.777 || asp > 1.778 {
		t.Errorf("aspect = %v, want 16:9", asp)
	}
	if w, h := a.Document().Size(); w != 1920 || h != 1080 {
		t.Errorf("document size = %vx%v", w, h)
	}
	b := a.Document().ByID(panel.TextPanelID).Bounds
	if mid := b.X + b.Width/2; mid < 959 || mid > 961 {
		t.Errorf("text panel centre = %v after resize, want 960", mid)
	}
}

func TestProxySyncThroughFrames(t *testing.T) {
	a := newApp(t, 800, 600)
	for i := 0; i < 120; i++ {
		a.Frame(0.02)
		for _, isl := range a.Scene().Islands() {
			if isl.Proxy.Position != isl.Position {
				t.Fatalf("frame %d: island %d proxy out of sync", i, isl.ID)
			}
		}
	}
	if e := a.Elapsed(); e < 2.39 || e > 2.41 {
		t.Errorf("Elapsed() = %v, want 2.4", e)
	}
}
