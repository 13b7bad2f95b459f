package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoWindow is returned when the platform cannot open a window or GL context.
var ErrNoWindow = errors.New("graphics: window could not be created")

// Config sets up the window.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
	// Shutdown, when set, runs after the loop ends while the GL context is still alive.
	Shutdown func()
}

// Session receives input and time from the loop. *app.App satisfies it.
type Session interface {
	Frame(dt float32)
	Pointer(x, y float32, down bool)
	Wheel(delta float32)
	Resize(w, h int)
}

// Run opens a resizable window and drives s until the window is closed. Each frame it feeds resize,
// pointer and wheel input, advances s by the frame time, then clears to black and calls draw.
func Run(cfg Config, s Session, draw func()) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	defer rl.CloseWindow()
	if cfg.Shutdown != nil {
		defer cfg.Shutdown()
	}

	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	s.Resize(w, h)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			s.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		m := rl.GetMousePosition()
		s.Pointer(m.X, m.Y, rl.IsMouseButtonDown(rl.MouseButtonLeft))
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			s.Wheel(wheel)
		}
		s.Frame(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	return nil
}
