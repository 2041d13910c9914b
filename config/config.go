package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/memfs/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. MEMFS_PROMPT
const EnvPrefix = "MEMFS"

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl   = util.InfoLevel
	DefaultRootName = "/"
	DefaultPrompt   = "fs> "
	DefaultBanner   = "Welcome to the File System CLI!"
	DefaultColor    = true
)

// Log verbosity as given on the command line or in override files.
// Higher is noisier.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Config contains runtime configuration values for the filesystem and its shell.
type Config struct {
	LogLvl   util.LogLevel // Minimum level written to the log (Default info)
	RootName string        // Name of the root directory (Default "/")
	Prompt   string        // Shell prompt shown on interactive terminals (Default "fs> ")
	Banner   string        // Greeting printed when an interactive shell starts
	Color    bool          // Style error output when writing to a terminal (Default true)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a verbosity between 1 (error) and 5 (trace); out of range values are clamped
	LogLvl   *int    `yaml:"verbose,omitempty" json:"verbose,omitempty" envconfig:"VERBOSE"`
	RootName *string `yaml:"root_name,omitempty" json:"root_name,omitempty" envconfig:"ROOT_NAME"`
	Prompt   *string `yaml:"prompt,omitempty" json:"prompt,omitempty" envconfig:"PROMPT"`
	Banner   *string `yaml:"banner,omitempty" json:"banner,omitempty" envconfig:"BANNER"`
	Color    *bool   `yaml:"color,omitempty" json:"color,omitempty" envconfig:"COLOR"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:   DefaultLogLvl,
		RootName: DefaultRootName,
		Prompt:   DefaultPrompt,
		Banner:   DefaultBanner,
		Color:    DefaultColor,
	}
}

// NewConfig returns the defaults with override applied; override may be nil
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.RootName != nil {
		c.RootName = *override.RootName
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.Banner != nil {
		c.Banner = *override.Banner
	}
	if override.Color != nil {
		c.Color = *override.Color
	}
}

// VerboseToLogLevel clamps verbose to [ErrorVerbose, TraceVerbose] and maps it
// onto a [util.LogLevel]
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(verbose, TraceVerbose))
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// LoadEnvOverride reads MEMFS_* environment variables into an override.
// Unset variables leave their fields nil.
func LoadEnvOverride() (*ConfigOverride, error) {
	var override ConfigOverride
	if err := envconfig.Process(EnvPrefix, &override); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}
	return &override, nil
}

// NewConfigFromFile layers the override file at path over the defaults.
// An empty path yields the defaults. Load errors name the file.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Merge(override)
	return cfg, nil
}
