package panel

import (
	"math/rand/v2"
	"strings"
	"testing"

	"portfolio3d/internal/camera"
	"portfolio3d/internal/content"
	"portfolio3d/internal/logger"
	"portfolio3d/internal/scene"
	"portfolio3d/internal/ui"
)

type fixture struct {
	doc   *ui.Document
	cam   *camera.Camera
	scene *scene.State
	p     *Presenter
}

func newFixture() fixture {
	cat := content.Default()
	doc := ui.NewDocument(ui.DefaultStylesheet(), 1280, 720)
	cam := camera.New(1280, 720)
	s := scene.New(rand.New(rand.NewPCG(1, 2)), scene.Options{Categories: cat.Categories()})
	s.Advance(0)
	return fixture{doc: doc, cam: cam, scene: s, p: New(doc, cam, cat, logger.Discard())}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{0.9, "90%"},
		{0.85, "85%"},
		{0.8, "80%"},
		{0.75, "75%"},
		{0.7, "70%"},
		{0.57, "57%"},
		{0, "0%"},
	}
	for _, tc := range tests {
		if got := Percent(tc.level); got != tc.want {
			t.Errorf("Percent(%v) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestShowSkillDetails(t *testing.T) {
	f := newFixture()
	isl := f.scene.Islands()[2]
	if !f.p.ShowSkillDetails(isl) {
		t.Fatal("ShowSkillDetails returned false")
	}
	panel := f.doc.ByID(SkillPanelID)
	if panel == nil {
		t.Fatal("no skill panel")
	}
	if got := panel.Children[0].Text; got != "Game Dev" {
		t.Errorf("title = %q, want Game Dev", got)
	}
	fills := panel.FindClass("skill-meter-fill")
	if len(fills) != 1 || fills[0].Style["width"] != "80%" {
		t.Fatalf("meter fill = %+v", fills)
	}
	text := panel.TextContent()
	for _, want := range []string{"Game development experience", "C#", "Unity", "Phaser"} {
		if !strings.Contains(text, want) {
			t.Errorf("panel text missing %q: %q", want, text)
		}
	}
	if !strings.HasSuffix(panel.Style["left"], "%") || !strings.HasSuffix(panel.Style["top"], "%") {
		t.Errorf("anchor = %q, %q; want percentages", panel.Style["left"], panel.Style["top"])
	}
}

func TestSkillPanelReplaced(t *testing.T) {
	f := newFixture()
	f.p.ShowSkillDetails(f.scene.Islands()[0])
	f.p.ShowSkillDetails(f.scene.Islands()[4])
	if n := f.doc.Count(SkillPanelID); n != 1 {
		t.Fatalf("skill panels = %d, want 1", n)
	}
	if got := f.doc.ByID(SkillPanelID).Children[0].Text; got != "Databases" {
		t.Errorf("title = %q, want Databases", got)
	}
}

func TestSkillPanelFollowsCamera(t *testing.T) {
	f := newFixture()
	isl := f.scene.Islands()[1]
	f.p.ShowSkillDetails(isl)
	before := f.doc.ByID(SkillPanelID).Style["left"]
	f.cam.Rotate(200, 0)
	for i := 0; i < 100; i++ {
		f.cam.Update()
	}
	f.p.ShowSkillDetails(isl)
	if after := f.doc.ByID(SkillPanelID).Style["left"]; after == before {
		t.Errorf("anchor did not move with camera: %q", after)
	}
}

func TestSkillDetailsUnknownCategory(t *testing.T) {
	f := newFixture()
	f.p.ShowSkillDetails(f.scene.Islands()[0])
	bogus := *f.scene.Islands()[1]
	bogus.Category = "Knitting"
	if f.p.ShowSkillDetails(&bogus) {
		t.Error("unknown category should be a no-op")
	}
	if f.p.ShowSkillDetails(nil) {
		t.Error("nil island should be a no-op")
	}
	if got := f.doc.ByID(SkillPanelID).Children[0].Text; got != "Frontend" {
		t.Errorf("existing panel replaced: %q", got)
	}
}

func TestTextPanelSingleton(t *testing.T) {
	f := newFixture()
	cat := content.Default()
	if err := f.p.ShowTextPanel(cat.SkillsHTML()); err != nil {
		t.Fatal(err)
	}
	if err := f.p.ShowTextPanel(cat.ContactHTML()); err != nil {
		t.Fatal(err)
	}
	if n := f.doc.Count(TextPanelID); n != 1 {
		t.Fatalf("text panels = %d, want 1", n)
	}
	text := f.doc.ByID(TextPanelID).TextContent()
	if !strings.Contains(text, "Contact Me") || strings.Contains(text, "My Skills") {
		t.Errorf("text panel holds wrong content: %q", text)
	}
}

func TestTextPanelClose(t *testing.T) {
	f := newFixture()
	if err := f.p.ShowTextPanel(content.Default().ProjectsHTML()); err != nil {
		t.Fatal(err)
	}
	closers := f.doc.ByID(TextPanelID).FindClass(CloseClass)
	if len(closers) != 1 {
		t.Fatalf("close buttons = %d, want 1", len(closers))
	}
	b := closers[0].Bounds
	if !f.doc.Click(b.X+1, b.Y+1) {
		t.Fatal("click on close button not consumed")
	}
	if f.doc.ByID(TextPanelID) != nil {
		t.Error("text panel still open after close")
	}
	if f.p.Close(TextPanelID) {
		t.Error("second close should report nothing to close")
	}
}

func TestFixedContentNeverFails(t *testing.T) {
	f := newFixture()
	cat := content.Default()
	for _, html := range []string{cat.SkillsHTML(), cat.ProjectsHTML(), cat.ContactHTML()} {
		if err := f.p.ShowTextPanel(html); err != nil {
			t.Errorf("ShowTextPanel: %v", err)
		}
	}
}
