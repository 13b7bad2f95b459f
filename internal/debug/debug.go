package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// refresh text every N frames to limit allocations
	updateInterval = 30
)

// Debug draws optional overlays in the top-right corner. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Status, when set, adds one line of session info under the counters.
	Status func() string

	font       rl.Font
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Debug system with the given overlays enabled.
func New(showFPS, showMemAlloc bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowMemAlloc: showMemAlloc}
}

// SetFont sets the font used to draw the overlay. Zero texture ID = raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

func (d *Debug) enabled() bool {
	return d.ShowFPS || d.ShowMemAlloc
}

func (d *Debug) refresh() {
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
	if d.Status != nil {
		d.lines = append(d.lines, d.Status())
	}
}

// Draw renders the enabled overlays. Call last in the draw loop.
func (d *Debug) Draw() {
	if !d.enabled() {
		d.lines = d.lines[:0]
		return
	}
	d.frameCount++
	if len(d.lines) == 0 || d.frameCount%updateInterval == 0 {
		d.refresh()
	}
	screenW := float32(rl.GetScreenWidth())
	y := float32(padding)
	for _, text := range d.lines {
		if d.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
			rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), fontSize, 1, rl.Green)
		} else {
			w := float32(rl.MeasureText(text, fontSize))
			rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, rl.Green)
		}
		y += lineHeight
	}
}
