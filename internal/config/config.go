// Package config provides configuration types and defaults for heks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/heks/internal/log"
	"github.com/zjrosen/heks/internal/ui/styles"
)

// Config holds all configuration options for heks.
type Config struct {
	Columns   int         `mapstructure:"columns"`    // Bytes per row
	BlockSize int         `mapstructure:"block_size"` // Bytes per hex group
	Mmap      bool        `mapstructure:"mmap"`       // Map files instead of reading them
	Watch     bool        `mapstructure:"watch"`      // Reload when the file changes
	UI        UIConfig    `mapstructure:"ui"`
	Cache     CacheConfig `mapstructure:"cache"`
	Log       LogConfig   `mapstructure:"log"`
	Theme     ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	FPS          int  `mapstructure:"fps"`           // Frame rate cap
	ShowHelp     bool `mapstructure:"show_help"`     // Start with the full help open
	LittleEndian bool `mapstructure:"little_endian"` // Byte order of the info bar values
}

// CacheConfig sizes the page cache used when a file is read instead of mapped.
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"` // Off re-reads pages on every fetch
	PageSize   int           `mapstructure:"page_size"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	Level      string `mapstructure:"level"`       // debug, info, warn or error
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // Rotate after this many megabytes
	MaxBackups int    `mapstructure:"max_backups"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "dracula", "mono"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     cursor:
	//       bg: "#006000"
	// Or quoted dot notation:
	//   colors:
	//     "cursor.bg": "#006000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// StylesTheme converts the theme section for styles.ApplyTheme.
func (t ThemeConfig) StylesTheme() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.FlattenedColors()}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ValidateLayout checks the byte grid settings.
func ValidateLayout(columns, blockSize int) error {
	if columns <= 0 {
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalid, columns)
	}
	if blockSize <= 0 {
		return fmt.Errorf("%w: block_size must be positive, got %d", ErrInvalid, blockSize)
	}
	if columns%blockSize != 0 {
		return fmt.Errorf("%w: block_size %d does not divide columns %d", ErrInvalid, blockSize, columns)
	}
	return nil
}

// ValidateUI checks the user interface settings.
func ValidateUI(ui UIConfig) error {
	if ui.FPS <= 0 || ui.FPS > 120 {
		return fmt.Errorf("%w: ui.fps must be between 1 and 120, got %d", ErrInvalid, ui.FPS)
	}
	return nil
}

// ValidateCache checks the page cache settings.
func ValidateCache(c CacheConfig) error {
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: cache.page_size must be positive, got %d", ErrInvalid, c.PageSize)
	}
	if c.Expiration < 0 {
		return fmt.Errorf("%w: cache.expiration must not be negative, got %s", ErrInvalid, c.Expiration)
	}
	return nil
}

// ValidateLog checks the log settings.
func ValidateLog(l LogConfig) error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if l.MaxSizeMB < 0 || l.MaxBackups < 0 {
		return fmt.Errorf("%w: log rotation limits must not be negative", ErrInvalid)
	}
	return nil
}

// ValidateTheme checks the preset name and every color override.
func ValidateTheme(t ThemeConfig) error {
	if _, err := styles.ResolveColors(t.StylesTheme()); err != nil {
		return fmt.Errorf("%w: theme: %w", ErrInvalid, err)
	}
	return nil
}

// Validate checks the whole configuration and returns the first problem.
func (c Config) Validate() error {
	if err := ValidateLayout(c.Columns, c.BlockSize); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	if err := ValidateLog(c.Log); err != nil {
		return err
	}
	return ValidateTheme(c.Theme)
}

// DefaultLogPath returns ~/.heks.log, or heks.log when there is no home.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "heks.log"
	}
	return filepath.Join(home, ".heks.log")
}

// DefaultConfigPath returns the user config file location.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".heks", "config.yaml")
	}
	return filepath.Join(home, ".config", "heks", "config.yaml")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Columns:   16,
		BlockSize: 2,
		Mmap:      true,
		Watch:     true,
		UI: UIConfig{
			FPS:          60,
			ShowHelp:     false,
			LittleEndian: true,
		},
		Cache: CacheConfig{
			Enabled:    true,
			PageSize:   64 * 1024,
			Expiration: 10 * time.Minute,
		},
		Log: LogConfig{
			Enabled:    false,
			Path:       DefaultLogPath(),
			Level:      "debug",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Theme: ThemeConfig{
			// Default theme uses the "default" preset
			Preset: "",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# heks configuration

# Bytes per row and bytes per hex group (block_size must divide columns)
columns: 16
block_size: 2

# Map files into memory. When off, or when mapping fails, files are read
# page by page through a cache.
mmap: true

# Reload the view when the file changes on disk
watch: true

# UI settings
ui:
  fps: 60               # Frame rate cap
  show_help: false      # Start with the full key help open
  little_endian: true   # Byte order of the values in the info bar (toggle with e)

# Page cache, only used when the file is not memory mapped
cache:
  enabled: true         # Off reads every page from the file on each redraw
  page_size: 65536
  expiration: 10m       # Pages on screen keep their entry alive

# Debug log (also enabled by --debug or HEKS_DEBUG=1)
log:
  enabled: false
  # path: ~/.heks.log
  level: debug          # debug, info, warn or error
  max_size_mb: 10       # Rotate after this size
  max_backups: 3        # Rotated files to keep

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default heks theme
  #   catppuccin-mocha  - Soothing pastel theme (dark)
  #   dracula           - Dark theme with vibrant colors
  #   mono              - Grayscale theme
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   cursor.bg: "#006000"
  #   cursor.fg: "#60FF60"
  #   frame.bg: "#0000C0"
  #
  # Tokens: frame.fg frame.bg hex.fg hex.bg glyph.fg glyph.bg cursor.fg
  # cursor.bg info.spacer info.shadow info.label info.field info.text
  # text.primary text.muted status.error
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
