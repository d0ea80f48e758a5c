package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultPrefsPath is the engine preferences file, relative to the process
// working directory.
const DefaultPrefsPath = "config/engine.json"

// Prefs holds engine-only preferences (overlays, grid). Persisted across
// runs; game state is not.
type Prefs struct {
	GridVisible bool `json:"grid_visible"`
	ShowFPS     bool `json:"show_fps"`
}

// DefaultPrefs returns default preferences (grid on, FPS overlay off).
func DefaultPrefs() Prefs {
	return Prefs{
		GridVisible: true,
		ShowFPS:     false,
	}
}

// LoadPrefs reads preferences from path. If the file is missing or invalid,
// returns DefaultPrefs() and does not create a file.
func LoadPrefs(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPrefs()
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs()
	}
	return p
}

// SavePrefs writes preferences to path, creating the directory if needed.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
