package panel

import (
	"fmt"
	"math"
	"strconv"

	"portfolio3d/internal/camera"
	"portfolio3d/internal/content"
	"portfolio3d/internal/logger"
	"portfolio3d/internal/scene"
	"portfolio3d/internal/ui"
)

// Fixed ids keep at most one panel of each kind in the document.
const (
	SkillPanelID = "skill-panel"
	TextPanelID  = "text-panel"
	CloseClass   = "close-btn"
)

// skillAnchorLift raises the skill panel anchor above the island so the panel doesn't cover it.
const skillAnchorLift = 4

// Presenter creates, replaces and removes the info panels.
type Presenter struct {
	doc     *ui.Document
	cam     *camera.Camera
	catalog *content.Catalog
	log     *logger.Logger
}

// New returns a presenter drawing into doc and anchoring skill panels through cam.
func New(doc *ui.Document, cam *camera.Camera, catalog *content.Catalog, log *logger.Logger) *Presenter {
	return &Presenter{doc: doc, cam: cam, catalog: catalog, log: log}
}

// ShowSkillDetails replaces the skill panel with one for isl, anchored at its projected screen position.
// It returns false (and changes nothing) when isl is nil or its category is not in the catalog.
func (p *Presenter) ShowSkillDetails(isl *scene.Island) bool {
	if isl == nil {
		return false
	}
	skill, ok := p.catalog.Lookup(isl.Category)
	if !ok {
		return false
	}
	p.doc.Remove(SkillPanelID)

	list := ui.NewNode("ul", "", "", "")
	for _, tech := range skill.Technologies {
		list.Append(ui.NewNode("li", "", "", tech))
	}
	fill := ui.NewNode("div", "skill-meter-fill", "", "").SetStyle("width", Percent(skill.Level))
	panel := ui.NewNode("div", "info-panel", SkillPanelID, "").Append(
		ui.NewNode("h3", "", "", isl.Category),
		ui.NewNode("div", "skill-meter", "", "").Append(fill),
		ui.NewNode("p", "", "", skill.Description),
		list,
	)

	// Projected fresh on every call: the camera may have moved since the last frame.
	anchor := isl.Position
	anchor[1] += skillAnchorLift
	ndc := p.cam.Project(anchor)
	panel.SetStyle("left", pct((float64(ndc[0])*0.5+0.5)*100))
	panel.SetStyle("top", pct((-float64(ndc[1])*0.5+0.5)*100))

	p.doc.Append(panel)
	p.log.Logf("skill panel: %s (%s)", isl.Category, Percent(skill.Level))
	return true
}

// ShowTextPanel replaces the text panel with htmlContent, anchored bottom-centre, plus a close button.
func (p *Presenter) ShowTextPanel(htmlContent string) error {
	nodes, err := ui.ParseHTML(htmlContent)
	if err != nil {
		return fmt.Errorf("text panel: %w", err)
	}
	p.doc.Remove(TextPanelID)

	panel := ui.NewNode("div", "info-panel", TextPanelID, "")
	panel.SetStyle("left", "50%").SetStyle("bottom", "80px").SetStyle("transform", "translateX(-50%)")
	panel.Append(nodes...)

	closeBtn := ui.NewNode("button", CloseClass, "", "×")
	closeBtn.OnClick = func() { p.Close(TextPanelID) }
	panel.Append(closeBtn)

	p.doc.Append(panel)
	return nil
}

// Close removes the panel with id. It reports whether a panel was open.
func (p *Presenter) Close(id string) bool {
	if !p.doc.Remove(id) {
		return false
	}
	p.log.Logf("closed %s", id)
	return true
}

// Percent formats a 0–1 level as a CSS percentage, e.g. 0.8 -> "80%".
func Percent(level float64) string {
	return pct(level * 100)
}

func pct(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + "%"
}
