// Package config loads basinsync settings from a YAML or TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ncfmp/basinsync-go/pkg/basinsync"
)

// Config holds all basinsync configuration.
type Config struct {
	Basins  BasinConfig   `yaml:"basins" toml:"basins"`
	HUCs    HUCConfig     `yaml:"hucs" toml:"hucs"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// BasinConfig configures the BasinStudies update.
type BasinConfig struct {
	Table    string `yaml:"table" toml:"table"`
	Sheet    string `yaml:"sheet" toml:"sheet"`
	KeyField string `yaml:"key_field" toml:"key_field"`
}

// HUCConfig configures the RAS2D update.
type HUCConfig struct {
	Table        string `yaml:"table" toml:"table"`
	Sheet        string `yaml:"sheet" toml:"sheet"`
	KeyField     string `yaml:"key_field" toml:"key_field"`
	KeyColumn    string `yaml:"key_column" toml:"key_column"`
	StatusColumn string `yaml:"status_column" toml:"status_column"`
	FirstRow     int    `yaml:"first_row" toml:"first_row"`
	LastRow      int    `yaml:"last_row" toml:"last_row"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // console, json
}

// DefaultConfig returns the NCFMP defaults.
func DefaultConfig() *Config {
	b := basinsync.DefaultBasinOptions()
	h := basinsync.DefaultHUCOptions()
	return &Config{
		Basins: BasinConfig{
			Table:    b.Table,
			Sheet:    b.Sheet,
			KeyField: b.KeyField,
		},
		HUCs: HUCConfig{
			Table:        h.Table,
			Sheet:        h.Sheet,
			KeyField:     h.KeyField,
			KeyColumn:    h.KeyColumn,
			StatusColumn: h.StatusColumn,
			FirstRow:     h.FirstRow,
			LastRow:      h.LastRow,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from path over the defaults. An empty path or a missing
// file yields the defaults. Files ending in .toml are read as TOML, anything else as YAML.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := decode(path, data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BASINSYNC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BASINSYNC_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("BASINSYNC_BASIN_TABLE"); v != "" {
		c.Basins.Table = v
	}
	if v := os.Getenv("BASINSYNC_HUC_TABLE"); v != "" {
		c.HUCs.Table = v
	}
}

// Validate checks that every name is set and the dashboard row range is usable.
func (c *Config) Validate() error {
	required := []struct{ name, value string }{
		{"basins.table", c.Basins.Table},
		{"basins.sheet", c.Basins.Sheet},
		{"basins.key_field", c.Basins.KeyField},
		{"hucs.table", c.HUCs.Table},
		{"hucs.sheet", c.HUCs.Sheet},
		{"hucs.key_field", c.HUCs.KeyField},
		{"hucs.key_column", c.HUCs.KeyColumn},
		{"hucs.status_column", c.HUCs.StatusColumn},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("invalid config: %s is empty", r.name)
		}
	}
	if c.HUCs.FirstRow < 1 || c.HUCs.LastRow < c.HUCs.FirstRow {
		return fmt.Errorf("invalid config: hucs row range %d..%d", c.HUCs.FirstRow, c.HUCs.LastRow)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid config: logging.format %q (must be console or json)", c.Logging.Format)
	}
	return nil
}

// BasinOptions converts the basin section to update options.
func (c *Config) BasinOptions() basinsync.BasinOptions {
	return basinsync.BasinOptions{
		Table:    c.Basins.Table,
		Sheet:    c.Basins.Sheet,
		KeyField: c.Basins.KeyField,
	}
}

// HUCOptions converts the HUC section to update options.
func (c *Config) HUCOptions() basinsync.HUCOptions {
	return basinsync.HUCOptions{
		Table:        c.HUCs.Table,
		Sheet:        c.HUCs.Sheet,
		KeyField:     c.HUCs.KeyField,
		KeyColumn:    c.HUCs.KeyColumn,
		StatusColumn: c.HUCs.StatusColumn,
		FirstRow:     c.HUCs.FirstRow,
		LastRow:      c.HUCs.LastRow,
	}
}
