package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tw93/dirsweep/internal/logging"
	"github.com/tw93/dirsweep/internal/results"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "DIRSWEEP_CONFIG"

// Config represents dirsweep configuration options
type Config struct {
	// Roots are the directories crawled on refresh, in order
	Roots []string `yaml:"roots"`

	// IgnorePatterns are substrings; any directory path containing one is pruned
	IgnorePatterns []string `yaml:"ignore_patterns"`

	// UsePresets appends the built-in ignore presets to IgnorePatterns
	UsePresets bool `yaml:"use_presets"`

	// Dedupe drops directories already collected (overlapping roots)
	Dedupe bool `yaml:"dedupe"`

	// SearchMode is "substring" or "fuzzy"
	SearchMode string `yaml:"search_mode"`

	// TickInterval is how often the TUI polls for crawl results
	TickInterval time.Duration `yaml:"tick_interval"`

	// LogFile is where diagnostics are written
	LogFile string `yaml:"log_file"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Roots:          nil,
		IgnorePatterns: []string{".git"},
		UsePresets:     false,
		Dedupe:         false,
		SearchMode:     results.Substring.String(),
		TickInterval:   120 * time.Millisecond,
		LogFile:        defaultLogFile(),
		LogLevel:       "info",
	}
}

// DefaultPath returns the config file location: $DIRSWEEP_CONFIG, then
// $XDG_CONFIG_HOME/dirsweep/config.yaml, then ~/.config/dirsweep/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandHome(p)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dirsweep", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".dirsweep", "config.yaml")
	}
	return filepath.Join(home, ".config", "dirsweep", "config.yaml")
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "dirsweep.log")
	}
	return filepath.Join(home, ".cache", "dirsweep", "dirsweep.log")
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are read as strings so "120ms" works
	type yamlConfig struct {
		Roots          []string `yaml:"roots"`
		IgnorePatterns []string `yaml:"ignore_patterns"`
		UsePresets     bool     `yaml:"use_presets"`
		Dedupe         bool     `yaml:"dedupe"`
		SearchMode     string   `yaml:"search_mode"`
		TickInterval   string   `yaml:"tick_interval"`
		LogFile        string   `yaml:"log_file"`
		LogLevel       string   `yaml:"log_level"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(yamlCfg.Roots) > 0 {
		cfg.Roots = yamlCfg.Roots
	}
	// An explicit empty list clears the default ignore patterns
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["ignore_patterns"]; exists {
			cfg.IgnorePatterns = yamlCfg.IgnorePatterns
		}
	}
	if yamlCfg.UsePresets {
		cfg.UsePresets = true
	}
	if yamlCfg.Dedupe {
		cfg.Dedupe = true
	}
	if yamlCfg.SearchMode != "" {
		cfg.SearchMode = yamlCfg.SearchMode
	}
	if yamlCfg.TickInterval != "" {
		d, err := time.ParseDuration(yamlCfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid tick_interval format %q: %w", yamlCfg.TickInterval, err)
		}
		cfg.TickInterval = d
	}
	if yamlCfg.LogFile != "" {
		cfg.LogFile = yamlCfg.LogFile
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds command-line overrides. Nil or empty values leave the config alone.
type Flags struct {
	Roots          []string
	IgnorePatterns []string
	UsePresets     *bool
	Dedupe         *bool
	SearchMode     *string
	LogFile        *string
	LogLevel       *string
}

// MergeWithFlags merges CLI flags into the configuration.
// Roots and ignore patterns given on the command line replace the configured lists.
func (c *Config) MergeWithFlags(f Flags) {
	if len(f.Roots) > 0 {
		c.Roots = append([]string(nil), f.Roots...)
	}
	if len(f.IgnorePatterns) > 0 {
		c.IgnorePatterns = append([]string(nil), f.IgnorePatterns...)
	}
	if f.UsePresets != nil {
		c.UsePresets = *f.UsePresets
	}
	if f.Dedupe != nil {
		c.Dedupe = *f.Dedupe
	}
	if f.SearchMode != nil {
		c.SearchMode = *f.SearchMode
	}
	if f.LogFile != nil {
		c.LogFile = *f.LogFile
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	c.normalize()
}

// Validate checks values that have a fixed vocabulary. Roots are never checked:
// a missing root simply crawls to nothing.
func (c *Config) Validate() error {
	if _, err := results.ParseMode(c.SearchMode); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	return nil
}

// normalize expands "~" in paths and drops blank ignore patterns.
func (c *Config) normalize() {
	for i, r := range c.Roots {
		c.Roots[i] = ExpandHome(r)
	}
	c.LogFile = ExpandHome(c.LogFile)

	patterns := c.IgnorePatterns[:0:0]
	for _, p := range c.IgnorePatterns {
		if strings.TrimSpace(p) == "" {
			continue
		}
		patterns = append(patterns, p)
	}
	c.IgnorePatterns = patterns
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[1:])
}
