package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/andareed/siftly-wave/logging"
)

// ColorsConfig overrides individual palette entries. Empty fields keep the
// built-in colors.
type ColorsConfig struct {
	WaveHigh  string `toml:"wave_high"`
	WaveLow   string `toml:"wave_low"`
	Label     string `toml:"label"`
	Indicator string `toml:"indicator"`
	Selection string `toml:"selection"`
	BandAlt   string `toml:"band_alt"`
}

type Config struct {
	RowHeight   int          `toml:"row_height"`
	BandPattern int          `toml:"band_pattern"`
	ZoomStep    float64      `toml:"zoom_step"`
	PanFraction float64      `toml:"pan_fraction"`
	Colors      ColorsConfig `toml:"colors"`
}

func defaultConfig() Config {
	return Config{
		RowHeight:   3,
		BandPattern: 1,
		ZoomStep:    2.0,
		PanFraction: 0.1,
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sfwave", "config.toml")
}

// loadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "loading config %s", path)
	}
	logging.Debugf("loaded config from %s", path)
	if cfg.RowHeight < 2 {
		cfg.RowHeight = 2
	}
	if cfg.ZoomStep <= 1 {
		cfg.ZoomStep = 2.0
	}
	if cfg.PanFraction <= 0 || cfg.PanFraction > 1 {
		cfg.PanFraction = 0.1
	}
	if cfg.BandPattern < 1 {
		cfg.BandPattern = 1
	}
	return cfg, nil
}
