package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default tuning values used when a field is absent from the config file.
const (
	DefaultMethod          = "avg"
	DefaultPlotWidthPx     = 900
	DefaultPlotHeightPx    = 900
	DefaultDBBusyTimeoutMs = 5000
)

// TuningConfig represents optional tuning parameters for the cluster tool.
// Fields omitted from the JSON file retain their default values, so partial
// configs are safe.
type TuningConfig struct {
	// DefaultMethod is the linkage rule used when no method flag is given
	// ("avg", "min", or "max").
	DefaultMethod *string `json:"default_method,omitempty"`

	// Plot output dimensions in pixels.
	PlotWidthPx  *int `json:"plot_width_px,omitempty"`
	PlotHeightPx *int `json:"plot_height_px,omitempty"`

	// DBBusyTimeoutMs is the SQLite busy timeout applied on open.
	DBBusyTimeoutMs *int `json:"db_busy_timeout_ms,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
// Use LoadTuningConfig to load actual values from a file.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file must
// have a .json extension and stay under the max file size.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that every present field holds a usable value.
func (c *TuningConfig) Validate() error {
	if c.DefaultMethod != nil {
		switch *c.DefaultMethod {
		case "avg", "min", "max":
		default:
			return fmt.Errorf("default_method must be avg, min, or max; got %q", *c.DefaultMethod)
		}
	}
	if c.PlotWidthPx != nil && *c.PlotWidthPx <= 0 {
		return fmt.Errorf("plot_width_px must be positive, got %d", *c.PlotWidthPx)
	}
	if c.PlotHeightPx != nil && *c.PlotHeightPx <= 0 {
		return fmt.Errorf("plot_height_px must be positive, got %d", *c.PlotHeightPx)
	}
	if c.DBBusyTimeoutMs != nil && *c.DBBusyTimeoutMs < 0 {
		return fmt.Errorf("db_busy_timeout_ms must be non-negative, got %d", *c.DBBusyTimeoutMs)
	}
	return nil
}

// GetDefaultMethod returns the configured default linkage method name.
func (c *TuningConfig) GetDefaultMethod() string {
	if c.DefaultMethod != nil {
		return *c.DefaultMethod
	}
	return DefaultMethod
}

// GetPlotWidthPx returns the configured plot width in pixels.
func (c *TuningConfig) GetPlotWidthPx() int {
	if c.PlotWidthPx != nil {
		return *c.PlotWidthPx
	}
	return DefaultPlotWidthPx
}

// GetPlotHeightPx returns the configured plot height in pixels.
func (c *TuningConfig) GetPlotHeightPx() int {
	if c.PlotHeightPx != nil {
		return *c.PlotHeightPx
	}
	return DefaultPlotHeightPx
}

// GetDBBusyTimeoutMs returns the configured SQLite busy timeout.
func (c *TuningConfig) GetDBBusyTimeoutMs() int {
	if c.DBBusyTimeoutMs != nil {
		return *c.DBBusyTimeoutMs
	}
	return DefaultDBBusyTimeoutMs
}
