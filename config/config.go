package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Library Library     `toml:"library"`
	Theme   ThemeConfig `toml:"theme"`
}

type Library struct {
	// TablesDir is the directory scanned for .vpx files.
	TablesDir string `toml:"tables_dir"`
	// RomsDir holds ROM archives; may be empty when no ROMs are managed.
	RomsDir string `toml:"roms_dir,omitempty"`
}

type ThemeConfig struct {
	FG          string `toml:"fg,omitempty"`
	Dim         string `toml:"dim,omitempty"`
	Muted       string `toml:"muted,omitempty"`
	Accent      string `toml:"accent,omitempty"`
	Header      string `toml:"header,omitempty"`
	Warning     string `toml:"warning,omitempty"`
	Error       string `toml:"error,omitempty"`
	CursorFG    string `toml:"cursor_fg,omitempty"`
	CursorBG    string `toml:"cursor_bg,omitempty"`
	StatusBarFG string `toml:"status_bar_fg,omitempty"`
	StatusBarBG string `toml:"status_bar_bg,omitempty"`
}

// DefaultConfigPath returns ~/.config/pindash/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "pindash", "config.toml")
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	configDir := filepath.Dir(path)
	absConfigDir, err := filepath.Abs(configDir)
	if err != nil {
		return cfg, fmt.Errorf("resolving config directory: %w", err)
	}

	cfg.Library.TablesDir = resolvePath(cfg.Library.TablesDir, absConfigDir)
	cfg.Library.RomsDir = resolvePath(cfg.Library.RomsDir, absConfigDir)

	if cfg.Library.TablesDir != "" {
		info, err := os.Stat(cfg.Library.TablesDir)
		if err != nil {
			return cfg, fmt.Errorf("tables dir %q: %w", cfg.Library.TablesDir, err)
		}
		if !info.IsDir() {
			return cfg, fmt.Errorf("tables dir %q is not a directory", cfg.Library.TablesDir)
		}
	}

	return cfg, nil
}

// resolvePath expands a ~ prefix and resolves relative paths against the
// config directory. Empty stays empty.
func resolvePath(path, base string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if !filepath.IsAbs(path) {
		return filepath.Join(base, path)
	}
	return path
}

// ResolvedTablesDir returns the configured tables dir, or the current
// directory when nothing is configured.
func (c Config) ResolvedTablesDir() string {
	if c.Library.TablesDir != "" {
		return c.Library.TablesDir
	}
	return "."
}

// DefaultTheme returns the built-in palette: cyan field headers, amber
// key bindings and warnings, slate selection background.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		FG:          "#ffffff",
		Dim:         "#a0a0a0",
		Muted:       "#646464",
		Accent:      "#f59e0b",
		Header:      "#06b6d4",
		Warning:     "#f59e0b",
		Error:       "#ff8080",
		CursorFG:    "#06b6d4",
		CursorBG:    "#1e293b",
		StatusBarFG: "#a0a0a0",
		StatusBarBG: "#1a1a1a",
	}
}

// ResolvedTheme merges config theme with defaults for any unset fields.
func (c Config) ResolvedTheme() ThemeConfig {
	d := DefaultTheme()
	return ThemeConfig{
		FG:          pick(c.Theme.FG, d.FG),
		Dim:         pick(c.Theme.Dim, d.Dim),
		Muted:       pick(c.Theme.Muted, d.Muted),
		Accent:      pick(c.Theme.Accent, d.Accent),
		Header:      pick(c.Theme.Header, d.Header),
		Warning:     pick(c.Theme.Warning, d.Warning),
		Error:       pick(c.Theme.Error, d.Error),
		CursorFG:    pick(c.Theme.CursorFG, d.CursorFG),
		CursorBG:    pick(c.Theme.CursorBG, d.CursorBG),
		StatusBarFG: pick(c.Theme.StatusBarFG, d.StatusBarFG),
		StatusBarBG: pick(c.Theme.StatusBarBG, d.StatusBarBG),
	}
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
