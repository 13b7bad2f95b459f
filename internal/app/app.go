package app

import (
	"math/rand/v2"

	"portfolio3d/internal/camera"
	"portfolio3d/internal/content"
	"portfolio3d/internal/logger"
	"portfolio3d/internal/panel"
	"portfolio3d/internal/pick"
	"portfolio3d/internal/scene"
	"portfolio3d/internal/ui"
)

// Ids of the always-visible overlay controls.
const (
	ControlsID  = "ui-panel"
	SkillsBtn   = "skills-btn"
	ProjectsBtn = "projects-btn"
	ContactBtn  = "contact-btn"
)

// Options configures one session.
type Options struct {
	Width, Height int
	Seed          uint64
	ParticleCount int
	Stylesheet    *ui.Stylesheet // nil = ui.DefaultStylesheet()
}

// App is the session state: the scene plus everything that reads or mutates it.
// The host calls Frame, Pointer (or Click), Wheel and Resize from its single loop.
type App struct {
	log     *logger.Logger
	catalog *content.Catalog
	scene   *scene.State
	cam     *camera.Camera
	doc     *ui.Document
	picker  *pick.Dispatcher
	panels  *panel.Presenter
	elapsed float32
	ptr     pointer
}

// New builds the world and the overlay for a Width×Height viewport.
func New(opts Options, catalog *content.Catalog, log *logger.Logger) *App {
	if opts.Stylesheet == nil {
		opts.Stylesheet = ui.DefaultStylesheet()
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x5851f42d4c957f2d))
	s := scene.New(rng, scene.Options{
		Categories:    catalog.Categories(),
		ParticleCount: opts.ParticleCount,
	})
	cam := camera.New(opts.Width, opts.Height)
	doc := ui.NewDocument(opts.Stylesheet, opts.Width, opts.Height)

	a := &App{
		log:     log,
		catalog: catalog,
		scene:   s,
		cam:     cam,
		doc:     doc,
		picker:  pick.NewDispatcher(cam, s),
		panels:  panel.New(doc, cam, catalog, log),
	}
	a.setupControls()
	log.Logf("scene built: %d islands, %d projects, %d particles (seed %d)",
		len(s.Islands()), len(s.Projects()), s.Particles().Len(), opts.Seed)
	return a
}

func (a *App) setupControls() {
	bar := ui.NewNode("div", "", ControlsID, "")
	bind := func(id, label string, html func() string) {
		b := ui.NewNode("button", "", id, label)
		b.OnClick = func() {
			if err := a.panels.ShowTextPanel(html()); err != nil {
				a.log.Logf("%s: %v", id, err)
			}
		}
		bar.Append(b)
	}
	bind(SkillsBtn, "Skills", a.catalog.SkillsHTML)
	bind(ProjectsBtn, "Projects", a.catalog.ProjectsHTML)
	bind(ContactBtn, "Contact", a.catalog.ContactHTML)
	a.doc.Append(bar)
}

// Frame advances the world by dt seconds and steps camera inertia. Call once per displayed frame.
func (a *App) Frame(dt float32) {
	if dt > 0 {
		a.elapsed += dt
	}
	a.scene.Advance(a.elapsed)
	a.cam.Update()
}

// Click handles a pointer click at window pixel (x, y). Overlay controls get it first; otherwise the
// nearest island under the pointer opens its skill panel. It reports whether anything handled the click.
func (a *App) Click(x, y float32) bool {
	if a.doc.Click(x, y) {
		return true
	}
	isl, ok := a.picker.Pick(x, y)
	if !ok {
		return false
	}
	return a.panels.ShowSkillDetails(isl)
}

// Press activates an overlay control by id, as if it had been clicked.
func (a *App) Press(id string) bool {
	n := a.doc.ByID(id)
	if n == nil || n.OnClick == nil {
		return false
	}
	n.OnClick()
	return true
}

// Resize applies a new viewport size to the camera projection and the overlay layout.
func (a *App) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	a.cam.Resize(w, h)
	a.doc.Resize(w, h)
	a.log.Logf("resize %dx%d", w, h)
}

// Drag orbits the camera by a pointer drag of dx, dy pixels.
func (a *App) Drag(dx, dy float32) {
	a.cam.Rotate(dx, dy)
}

// Wheel zooms the camera.
func (a *App) Wheel(delta float32) {
	a.cam.Zoom(delta)
}

// Scene returns the world state.
func (a *App) Scene() *scene.State { return a.scene }

// Camera returns the viewer camera.
func (a *App) Camera() *camera.Camera { return a.cam }

// Document returns the overlay document.
func (a *App) Document() *ui.Document { return a.doc }

// Elapsed returns seconds of animation time so far.
func (a *App) Elapsed() float32 { return a.elapsed }
