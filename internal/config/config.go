// Package config persists CLI render defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/janekbaraniewski/calheat/colorscale"
)

// RenderConfig holds the default render settings applied under flag
// overrides.
type RenderConfig struct {
	ColorScale    string `json:"color_scale"`
	CellSize      int    `json:"cell_size"`
	Flip          bool   `json:"flip"`
	DateLabels    bool   `json:"date_labels"`
	WeekdayLabels bool   `json:"weekday_labels"`
	MonthLabels   bool   `json:"month_labels"`
	YearLabels    bool   `json:"year_labels"`
	Colorbar      bool   `json:"colorbar"`
}

type Config struct {
	Render RenderConfig `json:"render"`
}

func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			ColorScale:    colorscale.DefaultName,
			CellSize:      18,
			Flip:          true,
			WeekdayLabels: true,
			MonthLabels:   true,
		},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "calheat")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "calheat")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Render.ColorScale == "" {
		cfg.Render.ColorScale = colorscale.DefaultName
	}
	if cfg.Render.CellSize <= 0 {
		cfg.Render.CellSize = DefaultConfig().Render.CellSize
	}

	return cfg, nil
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
