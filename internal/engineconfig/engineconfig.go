package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"portfolio3d/internal/logger"
	"portfolio3d/internal/scene"
)

// ConfigPath is the path to the viewer config file, relative to the process working directory.
const ConfigPath = "config/portfolio.json"

// Prefs holds viewer preferences (window, debug overlays, decorative seed). Nothing about the
// session itself is persisted; this file is only read at startup.
type Prefs struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Fullscreen    bool   `json:"fullscreen"`
	TargetFPS     int    `json:"target_fps"`
	Seed          uint64 `json:"seed,omitempty"` // 0 = seed from the clock
	ParticleCount int    `json:"particle_count"`
	ShowFPS       bool   `json:"show_fps"`
	ShowMemAlloc  bool   `json:"show_memalloc"`
	FontPath      string `json:"font_path,omitempty"`
	LogPath       string `json:"log_path"`
}

// Default returns default preferences (1280×720 window, debug overlays off).
func Default() Prefs {
	return Prefs{
		Width:         1280,
		Height:        720,
		TargetFPS:     60,
		ParticleCount: scene.DefaultParticleCount,
		LogPath:       logger.DefaultPath,
	}
}

// Load reads preferences from path. A missing file yields Default() and no error.
// An unreadable or invalid file yields Default() and the error, so the caller can log it and carry on.
// Zero or negative numeric fields fall back to their defaults.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return p.normalized(), nil
}

func (p Prefs) normalized() Prefs {
	d := Default()
	if p.Width <= 0 {
		p.Width = d.Width
	}
	if p.Height <= 0 {
		p.Height = d.Height
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.ParticleCount <= 0 {
		p.ParticleCount = d.ParticleCount
	}
	return p
}
