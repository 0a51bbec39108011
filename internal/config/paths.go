package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	FavoritesDir  string // Directory holding favorites data
	FavoritesFile string // Main favorites JSON store
	Exports       string // Default directory for exported packages
	Logs          string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	favDir := filepath.Join(cfg.BaseDir, "favorites")
	return Paths{
		FavoritesDir:  favDir,
		FavoritesFile: filepath.Join(favDir, "favorites.json"),
		Exports:       filepath.Join(cfg.BaseDir, "exports"),
		Logs:          filepath.Join(cfg.BaseDir, "logs"),
	}
}

// DefaultBaseDir returns the default base directory.
// Prefers the XDG data directory, falling back to ~/.ltwfav.
func DefaultBaseDir() string {
	if xdg.DataHome != "" {
		return filepath.Join(xdg.DataHome, "ltwfav")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ltwfav"
	}
	return filepath.Join(home, ".ltwfav")
}
