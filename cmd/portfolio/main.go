package main

import (
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio3d/internal/app"
	"portfolio3d/internal/content"
	"portfolio3d/internal/debug"
	"portfolio3d/internal/engineconfig"
	"portfolio3d/internal/fonts"
	"portfolio3d/internal/graphics"
	"portfolio3d/internal/logger"
	"portfolio3d/internal/render"
)

func main() {
	prefs, cfgErr := engineconfig.Load(engineconfig.ConfigPath)
	log := logger.New(prefs.LogPath)
	if cfgErr != nil {
		log.Logf("config: %v (using defaults)", cfgErr)
	}
	if err := run(prefs, log); err != nil {
		log.Logf("fatal: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(prefs engineconfig.Prefs, log *logger.Logger) error {
	seed := prefs.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a := app.New(app.Options{
		Width:         prefs.Width,
		Height:        prefs.Height,
		Seed:          seed,
		ParticleCount: prefs.ParticleCount,
	}, content.Default(), log)

	r := render.New()
	dbg := debug.New(prefs.ShowFPS, prefs.ShowMemAlloc)
	dbg.Status = func() string {
		return fmt.Sprintf("Frames: %d", a.Scene().Frames())
	}
	var fontLoaded bool
	draw := func() {
		if !fontLoaded {
			fontLoaded = true
			loadFont(prefs.FontPath, r, dbg, log)
		}
		r.Draw(a)
		dbg.Draw()
	}
	cfg := graphics.Config{
		Title:      "Portfolio",
		Width:      prefs.Width,
		Height:     prefs.Height,
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  prefs.TargetFPS,
		Shutdown:   r.Unload,
	}
	if err := graphics.Run(cfg, a, draw); err != nil {
		return fmt.Errorf("start viewer: %w", err)
	}
	log.Log("window closed")
	return nil
}

// loadFont needs a live GL context, so it runs on the first drawn frame.
func loadFont(setting string, r *render.Renderer, dbg *debug.Debug, log *logger.Logger) {
	if setting == "" {
		return
	}
	path, err := fonts.Resolve(setting)
	if err != nil {
		log.Logf("font %q: %v (using default)", setting, err)
		return
	}
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		log.Logf("font %q: load failed (using default)", path)
		return
	}
	r.SetFont(f)
	dbg.SetFont(f)
	log.Logf("font %s", path)
}
