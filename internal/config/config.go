// Package config loads the commitkit CLI configuration with Viper.
//
// Values are resolved in order: built-in defaults, then a TOML config file
// (an explicit --config path, else .commitkit.toml in the working
// directory, else commitkit.toml in the user config directory), then
// COMMITKIT_* environment variables. The core library is configured purely
// through its builder; this package serves only the command line layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also the environment prefix.
	AppName = "commitkit"
	// FileName is the config file name in the user config directory.
	FileName = "commitkit.toml"
	// LocalFileName is the per-repository config file name.
	LocalFileName = ".commitkit.toml"

	// FormatText is the human-readable report format.
	FormatText = "text"
	// FormatJSON is the machine-readable report format.
	FormatJSON = "json"
)

// dirOverride allows tests to redirect the user config directory.
var dirOverride string

// Config is the CLI configuration.
type Config struct {
	// Verbs are additional imperative verbs, merged into the builtin list.
	Verbs []string `mapstructure:"verbs" toml:"verbs"`
	// VerbsFile points at a file of additional verbs (entries separated
	// by newlines, commas or semicolons).
	VerbsFile string `mapstructure:"verbs_file" toml:"verbs_file"`
	// OneLiners allows single-line commit messages.
	OneLiners bool `mapstructure:"one_liners" toml:"one_liners"`
	// Format selects the report format, FormatText or FormatJSON.
	Format string `mapstructure:"format" toml:"format"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() Config {
	return Config{Format: FormatText}
}

// Validate reports unusable configuration values.
func (c Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("config: unknown format %q (want %q or %q)", c.Format, FormatText, FormatJSON)
	}
	return nil
}

// Load resolves the configuration. A non-empty path is used exclusively
// and must be readable. Otherwise the first existing default location is
// merged in; having no config file at all is fine.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	defaults := DefaultConfig()
	v.SetDefault("verbs", defaults.Verbs)
	v.SetDefault("verbs_file", defaults.VerbsFile)
	v.SetDefault("one_liners", defaults.OneLiners)
	v.SetDefault("format", defaults.Format)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.AutomaticEnv()

	if path == "" {
		path = findFile()
	} else if !fileExists(path) {
		return Config{}, fmt.Errorf("config: file not found: %s", path)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: applying values: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// findFile looks for a per-repository config first, then the user config
// directory.
func findFile() string {
	if fileExists(LocalFileName) {
		return LocalFileName
	}
	dir, err := Dir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, FileName)
	if fileExists(path) {
		return path
	}
	return ""
}

// Dir returns the commitkit user configuration directory:
// $XDG_CONFIG_HOME/commitkit on Linux, the platform equivalent elsewhere.
func Dir() (string, error) {
	if dirOverride != "" {
		return dirOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// SetDirOverride sets a custom user config directory.
// This is primarily intended for testing to bypass os.UserConfigDir.
func SetDirOverride(dir string) {
	dirOverride = dir
}

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	dirOverride = ""
}

const initHeader = `# commitkit configuration.
# Values here can be overridden per repository with a .commitkit.toml in
# the working tree, and by COMMITKIT_* environment variables.

`

// Init writes a starter config file in the user config directory and
// returns its path. An existing file is left untouched; created reports
// whether a new file was written.
func Init() (path string, created bool, err error) {
	dir, err := Dir()
	if err != nil {
		return "", false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("config: creating %s: %w", dir, err)
	}
	path = filepath.Join(dir, FileName)
	if fileExists(path) {
		return path, false, nil
	}
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", false, fmt.Errorf("config: encoding defaults: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(initHeader), data...), 0o644); err != nil {
		return "", false, fmt.Errorf("config: writing %s: %w", path, err)
	}
	return path, true, nil
}

// Render returns the TOML form of the configuration, as used by the
// config show command.
func Render(cfg Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("config: encoding: %w", err)
	}
	return string(data), nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
