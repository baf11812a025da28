package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/banshee-data/lut2png/internal/fsutil"
	"github.com/banshee-data/lut2png/internal/lut"
)

// maxFileSize caps the size of a config file.
const maxFileSize = 1 * 1024 * 1024 // 1MB

// Config holds optional defaults for a lut2png run. The JSON keys mirror the
// command-line flags; flags set explicitly on the command line win.
type Config struct {
	Mode    *string `json:"mode,omitempty"`
	Output  *string `json:"output,omitempty"`
	Outfile *string `json:"outfile,omitempty"`
	SwapXY  *bool   `json:"swap_xy,omitempty"`

	// Diagnostic previews; empty means not written.
	Plot  *string `json:"plot,omitempty"`
	Chart *string `json:"chart,omitempty"`
}

// EmptyConfig returns a Config with all fields set to nil, so every Get*
// method returns its built-in default.
func EmptyConfig() *Config {
	return &Config{}
}

// LoadConfig loads a Config from a JSON file on fsys.
// The file must have a .json extension and be under the max file size.
// Fields omitted from the JSON keep their defaults, so partial configs are safe.
func LoadConfig(fsys fsutil.FileSystem, path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.Mode != nil {
		if _, err := lut.ParseMode(*c.Mode); err != nil {
			return err
		}
	}

	if c.Output != nil {
		if _, err := lut.ParseFormat(*c.Output); err != nil {
			return err
		}
	}

	if c.Outfile != nil && *c.Outfile == "" {
		return fmt.Errorf("outfile must not be empty")
	}

	return nil
}

// GetMode returns the mode value or the default.
func (c *Config) GetMode() string {
	if c.Mode == nil {
		return string(lut.ModeNormalize)
	}
	return *c.Mode
}

// GetOutput returns the output value or the default.
func (c *Config) GetOutput() string {
	if c.Output == nil {
		return string(lut.FormatBase64)
	}
	return *c.Output
}

// GetOutfile returns the outfile value or the default.
func (c *Config) GetOutfile() string {
	if c.Outfile == nil {
		return lut.DefaultOutfile
	}
	return *c.Outfile
}

// GetSwapXY returns the swap_xy value or the default.
func (c *Config) GetSwapXY() bool {
	if c.SwapXY == nil {
		return false
	}
	return *c.SwapXY
}

// GetPlot returns the plot path, empty when unset.
func (c *Config) GetPlot() string {
	if c.Plot == nil {
		return ""
	}
	return *c.Plot
}

// GetChart returns the chart path, empty when unset.
func (c *Config) GetChart() string {
	if c.Chart == nil {
		return ""
	}
	return *c.Chart
}
