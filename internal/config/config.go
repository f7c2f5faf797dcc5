// Package config loads routegen settings from TOML or JSON files, the
// environment and command-line overlays.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Aman-s12345/go-routegen/internal/logging"
	"github.com/Aman-s12345/go-routegen/internal/synth"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvRootNamespace      = "ROUTEGEN_ROOT_NAMESPACE"
	EnvOutputFormat       = "ROUTEGEN_OUTPUT_FORMAT"
	EnvIntrospector       = "ROUTEGEN_INTROSPECTOR"
	EnvProjectPath        = "ROUTEGEN_PROJECT_PATH"
	EnvControllersPattern = "ROUTEGEN_CONTROLLERS_PATTERN"
	EnvControllers        = "ROUTEGEN_CONTROLLERS"
	EnvSnapshotPath       = "ROUTEGEN_SNAPSHOT_PATH"
	EnvOutputPath         = "ROUTEGEN_OUTPUT_PATH"
	EnvAppend             = "ROUTEGEN_APPEND"
	EnvWorkers            = "ROUTEGEN_WORKERS"
	EnvIgnoreMethods      = "ROUTEGEN_IGNORE_METHODS"
	EnvCacheSize          = "ROUTEGEN_CACHE_SIZE"
	EnvLogLevel           = "ROUTEGEN_LOG_LEVEL"
	EnvLogFormat          = "ROUTEGEN_LOG_FORMAT"
)

const (
	IntrospectorSource   = "source"
	IntrospectorPackages = "packages"

	DefaultControllersPattern = "**/*.go"
	DefaultOutputPath         = "-"
	DefaultWorkers            = 4
	DefaultCacheSize          = 64
)

// DefaultIgnoreMethods are exported methods that are never actions.
var DefaultIgnoreMethods = []string{"String", "ServeHTTP"}

type Config struct {
	RootNamespace      string         `toml:"root_namespace" json:"root_namespace" validate:"root_namespace"`
	OutputFormat       string         `toml:"output_format" json:"output_format" validate:"oneof=laravel go yaml json"`
	Introspector       string         `toml:"introspector" json:"introspector" validate:"oneof=source packages"`
	ProjectPath        string         `toml:"project_path" json:"project_path" validate:"required"`
	ControllersPattern string         `toml:"controllers_pattern" json:"controllers_pattern"`
	Controllers        []string       `toml:"controllers" json:"controllers" validate:"omitempty,unique,dive,required"`
	SnapshotPath       string         `toml:"snapshot_path" json:"snapshot_path"`
	OutputPath         string         `toml:"output_path" json:"output_path" validate:"required"`
	Append             *bool          `toml:"append" json:"append"`
	Workers            int            `toml:"workers" json:"workers" validate:"min=1,max=256"`
	IgnoreMethods      []string       `toml:"ignore_methods" json:"ignore_methods"`
	CacheSize          int            `toml:"cache_size" json:"cache_size" validate:"min=1"`
	Logging            logging.Config `toml:"logging" json:"logging"`
}

// Load reads a configuration file. The format follows the extension:
// .toml or .json.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s (supported: .toml, .json)", ext)
	}
	return &cfg, nil
}

// Finalize applies defaults, loads environment overrides, merges overlay on
// top and validates the configuration. overlay carries command-line flags
// and may be nil. Validation failures wrap synth.ErrConfiguration.
func (c *Config) Finalize(overlay *Config) error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}

	var loggingOverlay *logging.Config
	if overlay != nil {
		c.Merge(overlay)
		loggingOverlay = &overlay.Logging
	}

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Logging.Finalize(&logging.Env{Level: EnvLogLevel, Format: EnvLogFormat}, loggingOverlay); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Merge applies values from overlay that differ from their zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.RootNamespace != "" {
		c.RootNamespace = overlay.RootNamespace
	}
	if overlay.OutputFormat != "" {
		c.OutputFormat = overlay.OutputFormat
	}
	if overlay.Introspector != "" {
		c.Introspector = overlay.Introspector
	}
	if overlay.ProjectPath != "" {
		c.ProjectPath = overlay.ProjectPath
	}
	if overlay.ControllersPattern != "" {
		c.ControllersPattern = overlay.ControllersPattern
	}
	if len(overlay.Controllers) > 0 {
		c.Controllers = overlay.Controllers
	}
	if overlay.SnapshotPath != "" {
		c.SnapshotPath = overlay.SnapshotPath
	}
	if overlay.OutputPath != "" {
		c.OutputPath = overlay.OutputPath
	}
	if overlay.Append != nil {
		v := *overlay.Append
		c.Append = &v
	}
	if overlay.Workers != 0 {
		c.Workers = overlay.Workers
	}
	if len(overlay.IgnoreMethods) > 0 {
		c.IgnoreMethods = overlay.IgnoreMethods
	}
	if overlay.CacheSize != 0 {
		c.CacheSize = overlay.CacheSize
	}
	c.Logging.Merge(&overlay.Logging)
}

// Appends reports whether output is appended to an existing routes file.
func (c *Config) Appends() bool {
	return c.Append != nil && *c.Append
}

// Discover reports whether controllers are found by scanning the project
// rather than listed explicitly.
func (c *Config) Discover() bool {
	return len(c.Controllers) == 0
}

func (c *Config) loadDefaults() {
	if c.OutputFormat == "" {
		c.OutputFormat = "laravel"
	}
	if c.Introspector == "" {
		c.Introspector = IntrospectorSource
	}
	if c.ProjectPath == "" {
		c.ProjectPath = "."
	}
	if c.ControllersPattern == "" {
		c.ControllersPattern = DefaultControllersPattern
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.IgnoreMethods == nil {
		c.IgnoreMethods = append([]string(nil), DefaultIgnoreMethods...)
	}
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvRootNamespace); v != "" {
		c.RootNamespace = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.OutputFormat = v
	}
	if v := os.Getenv(EnvIntrospector); v != "" {
		c.Introspector = v
	}
	if v := os.Getenv(EnvProjectPath); v != "" {
		c.ProjectPath = v
	}
	if v := os.Getenv(EnvControllersPattern); v != "" {
		c.ControllersPattern = v
	}
	if v := os.Getenv(EnvControllers); v != "" {
		c.Controllers = splitList(v)
	}
	if v := os.Getenv(EnvSnapshotPath); v != "" {
		c.SnapshotPath = v
	}
	if v := os.Getenv(EnvOutputPath); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv(EnvAppend); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvAppend, err)
		}
		c.Append = &b
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvWorkers, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvIgnoreMethods); v != "" {
		c.IgnoreMethods = splitList(v)
	}
	if v := os.Getenv(EnvCacheSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvCacheSize, err)
		}
		c.CacheSize = n
	}
	return nil
}

func envError(name string, err error) error {
	return fmt.Errorf("%w: %s: %v", synth.ErrConfiguration, name, err)
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
