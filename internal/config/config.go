package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/scribe/internal/config/loader"
)

// ErrInvalidValue indicates a setting holds a value outside its allowed range.
var ErrInvalidValue = errors.New("invalid config value")

// DefaultFileName is the config file name looked up in the user config dir.
const DefaultFileName = "config.toml"

// Config holds every Scribe setting.
type Config struct {
	Editor    EditorConfig      `toml:"editor" yaml:"editor"`
	UI        UIConfig          `toml:"ui" yaml:"ui"`
	Clipboard ClipboardConfig   `toml:"clipboard" yaml:"clipboard"`
	Files     FilesConfig       `toml:"files" yaml:"files"`
	Logging   LoggingConfig     `toml:"logging" yaml:"logging"`
	Keys      map[string]string `toml:"keys" yaml:"keys"`

	// Source is the config file that contributed to this configuration,
	// or empty if none was found.
	Source string `toml:"-" yaml:"-"`
}

// EditorConfig holds editing settings.
type EditorConfig struct {
	// TabWidth is the tab stop interval used when a tab is inserted.
	TabWidth int `toml:"tabWidth" yaml:"tabWidth"`

	// ExpandTabsOnLoad feeds loaded files through the insert path so that
	// tabs in the file become spaces.
	ExpandTabsOnLoad bool `toml:"expandTabsOnLoad" yaml:"expandTabsOnLoad"`
}

// UIConfig holds display settings.
type UIConfig struct {
	// ScrollMargin is the minimum number of lines kept between the cursor
	// and the top or bottom edge of the text area.
	ScrollMargin int `toml:"scrollMargin" yaml:"scrollMargin"`

	// MinGutterWidth is the minimum width of the line number column.
	MinGutterWidth int `toml:"minGutterWidth" yaml:"minGutterWidth"`

	// LineNumbers shows the line number gutter.
	LineNumbers bool `toml:"lineNumbers" yaml:"lineNumbers"`

	// StatusPositionOffset is the distance from the right edge at which the
	// cursor position is drawn in the status bar.
	StatusPositionOffset int `toml:"statusPositionOffset" yaml:"statusPositionOffset"`
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	// System mirrors the internal clipboard to the OS clipboard.
	System bool `toml:"system" yaml:"system"`
}

// FilesConfig holds file handling settings.
type FilesConfig struct {
	// WatchExternal reports changes made to the open file by other programs.
	WatchExternal bool `toml:"watchExternal" yaml:"watchExternal"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string `toml:"level" yaml:"level"`

	// File is the log destination. Logs are discarded when empty.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth: 4,
		},
		UI: UIConfig{
			ScrollMargin:         4,
			MinGutterWidth:       4,
			LineNumbers:          true,
			StatusPositionOffset: 16,
		},
		Files: FilesConfig{
			WatchExternal: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Keys: make(map[string]string),
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	path      string
	fs        loader.FileSystem
	env       loader.Loader
	overrides map[string]any
}

// WithPath sets the config file path. The default is DefaultPath().
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFileSystem sets the file system the config file is read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnv replaces the environment layer. Pass nil to skip it.
func WithEnv(env loader.Loader) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithOverrides adds the highest-priority layer, typically built from
// command-line flags. Keys are dot-separated paths such as "logging.level".
func WithOverrides(overrides map[string]any) Option {
	return func(o *options) {
		o.overrides = overrides
	}
}

// DefaultPath returns the default config file location, or an empty string
// if the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scribe", DefaultFileName)
}

// Load assembles the configuration from all layers and validates it.
func Load(opts ...Option) (*Config, error) {
	o := options{
		path: DefaultPath(),
		fs:   loader.DefaultFS(),
		env:  loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := make(map[string]any)
	var source string

	if o.path != "" {
		data, err := loader.ForPath(o.fs, o.path).Load()
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		if data != nil {
			source = o.path
			merged = loader.DeepMerge(merged, data)
		}
	}

	if o.env != nil {
		data, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, data)
	}

	if len(o.overrides) > 0 {
		merged = loader.DeepMerge(merged, expandPaths(o.overrides))
	}

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode applies a merged settings map on top of the defaults.
func decode(merged map[string]any) (*Config, error) {
	cfg := Default()
	if len(merged) == 0 {
		return cfg, nil
	}

	data, err := toml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if cfg.Keys == nil {
		cfg.Keys = make(map[string]string)
	}
	return cfg, nil
}

// expandPaths turns {"logging.level": "debug"} into nested maps.
func expandPaths(flat map[string]any) map[string]any {
	nested := make(map[string]any)
	for path, value := range flat {
		parts := strings.Split(path, ".")
		current := nested
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = value
	}
	return nested
}

// Validate checks every setting against its allowed range.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return invalid("editor.tabWidth", c.Editor.TabWidth, "must be between 1 and 16")
	}
	if c.UI.ScrollMargin < 0 || c.UI.ScrollMargin > 20 {
		return invalid("ui.scrollMargin", c.UI.ScrollMargin, "must be between 0 and 20")
	}
	if c.UI.MinGutterWidth < 1 || c.UI.MinGutterWidth > 10 {
		return invalid("ui.minGutterWidth", c.UI.MinGutterWidth, "must be between 1 and 10")
	}
	if c.UI.StatusPositionOffset < 1 {
		return invalid("ui.statusPositionOffset", c.UI.StatusPositionOffset, "must be positive")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("logging.level", c.Logging.Level, "unknown level")
	}
	return nil
}

func invalid(path string, value any, msg string) error {
	return fmt.Errorf("%w: %s = %v: %s", ErrInvalidValue, path, value, msg)
}
