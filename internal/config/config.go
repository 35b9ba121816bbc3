// Package config loads frontend configuration. The engine itself takes no
// configuration beyond its layout; this covers the frontends' knobs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

// Config carries the frontend settings.
type Config struct {
	// Layout names a builtin layout.
	Layout string
	// LayoutFile points to a custom INI layout and wins over Layout.
	LayoutFile string
	// ToggleKey is the frontend chord that flips composition mode.
	ToggleKey string
}

const (
	defaultLayout = "dubeolsik"
	defaultToggle = "ctrl+space"
)

func Default() Config {
	return Config{Layout: defaultLayout, ToggleKey: defaultToggle}
}

// Load reads an INI config. An empty path or a missing file yields the
// defaults; a present but malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.Layout = file.Section("layout").Key("name").MustString(cfg.Layout)
	cfg.LayoutFile = file.Section("layout").Key("file").MustString(cfg.LayoutFile)
	cfg.ToggleKey = file.Section("toggle").Key("key").MustString(cfg.ToggleKey)
	return cfg, nil
}

// ResolveLayoutName normalizes user-facing layout aliases.
func ResolveLayoutName(name string) (string, error) {
	switch name {
	case "", "default", "dubeolsik", "2beolsik":
		return "dubeolsik", nil
	default:
		return "", fmt.Errorf("unknown layout %q (builtin: dubeolsik; use a layout file for anything else)", name)
	}
}
