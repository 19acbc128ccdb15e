package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultConfigFile is read when --config is not given.
const DefaultConfigFile = "lunasync.toml"

// ProjectConfig represents the lunasync.toml configuration file
type ProjectConfig struct {
	Site    SiteConfig    `toml:"site"`
	Export  ExportConfig  `toml:"export"`
	Preview PreviewConfig `toml:"preview"`
	Log     LogConfig     `toml:"log"`
}

// SiteConfig is the [site] section: document metadata and the page copy file.
type SiteConfig struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	// Page copy; empty uses the built-in LunaSync copy
	Content string `toml:"content"`
	// Footer copyright year; 0 uses the current year
	Year int `toml:"year"`
}

// ExportConfig is the [export] section used by lunasync export.
type ExportConfig struct {
	Output string `toml:"output"`
	// Leave out the Tailwind and icon CDN scripts
	NoScripts bool `toml:"no_scripts"`
}

// PreviewConfig is the [preview] section: how terminal cells map to CSS pixels.
type PreviewConfig struct {
	PxPerColumn float64 `toml:"px_per_column"`
	PxPerRow    float64 `toml:"px_per_row"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	// debug, info, warn or error
	Level string `toml:"level"`
	// Human-readable console output instead of JSON
	Development bool `toml:"development"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Site: SiteConfig{
			Title:       "LunaSync - Smart Living Made Simple",
			Description: "Transform your home with intelligent automation.",
			Content:     "",
		},
		Export: ExportConfig{
			Output: "index.html",
		},
		Preview: PreviewConfig{
			PxPerColumn: 8,
			PxPerRow:    20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the project configuration from path.
// With an empty path, lunasync.toml is read if present, otherwise the
// default config is returned.
func LoadConfig(path string) (ProjectConfig, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	defaults := DefaultConfig()
	if config.Export.Output == "" {
		config.Export.Output = defaults.Export.Output
	}
	if config.Preview.PxPerColumn <= 0 {
		config.Preview.PxPerColumn = defaults.Preview.PxPerColumn
	}
	if config.Preview.PxPerRow <= 0 {
		config.Preview.PxPerRow = defaults.Preview.PxPerRow
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	return config, nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// NewLogger builds the CLI logger. Logs go to stderr so command output on
// stdout stays machine-readable.
func NewLogger(config LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}

	zc := zap.NewProductionConfig()
	if config.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
