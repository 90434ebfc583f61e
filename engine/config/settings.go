package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the external settings store read by the editor at startup.
// Everything in here is consumed by value; nothing retains the struct.
type Settings struct {
	Zoom   float32       `toml:"zoom"`
	Theme  string        `toml:"theme"`
	Colors ColorOverride `toml:"colors"`

	Window WindowSettings `toml:"window"`
}

type WindowSettings struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	VSync  bool `toml:"vsync"`
}

// ColorOverride holds optional hex colour overrides on top of the theme.
// Empty strings mean "use the theme default".
type ColorOverride struct {
	Canvas           string `toml:"canvas"`
	ObjectBackground string `toml:"object_background"`
	ObjectOutline    string `toml:"object_outline"`
	SelectedOutline  string `toml:"selected_outline"`
}

func Default() Settings {
	return Settings{
		Zoom:  1,
		Theme: "light",
		Window: WindowSettings{
			Width:  1100,
			Height: 750,
			VSync:  true,
		},
	}
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned so a fresh install starts up clean.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %q: %w", path, err)
	}
	if s.Zoom < 0.25 || s.Zoom > 3 {
		s.Zoom = 1
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write settings %q: %w", path, err)
	}
	return nil
}
