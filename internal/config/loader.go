package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "lsdir"
)

// ConfigFiles are the dotfile names tried in order under ~/.config/lsdir.
var ConfigFiles = []string{"config.json", "config.yaml"}

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ConfigFileError is returned when a config file exists but cannot be used.
type ConfigFileError struct {
	Path  string
	Cause error
}

func (e *ConfigFileError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Cause)
}
func (e *ConfigFileError) Unwrap() error { return e.Cause }

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads configuration from the first of ~/.config/lsdir/config.json and
// ~/.config/lsdir/config.yaml that exists, merged over defaults.
// Returns default config if no dotfile exists.
// Returns error only for parse errors, unknown keys, permission issues, or validation failures.
func (l *Loader) Load() (*Config, error) {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil // Use defaults if can't get home dir
	}

	for _, name := range ConfigFiles {
		path := filepath.Join(homeDir, ".config", ConfigDir, name)
		cfg, found, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		if found {
			return cfg, nil
		}
	}

	return DefaultConfig(), nil
}

// LoadFile reads configuration from an explicit path. Unlike Load, a missing
// file is an error.
func (l *Loader) LoadFile(path string) (*Config, error) {
	cfg, found, err := l.loadFile(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &ConfigFileError{Path: path, Cause: os.ErrNotExist}
	}
	return cfg, nil
}

func (l *Loader) loadFile(path string) (*Config, bool, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, &ConfigFileError{Path: path, Cause: err} // permission issues
	}

	raw, err := parseRaw(path, data)
	if err != nil {
		return nil, false, &ConfigFileError{Path: path, Cause: err}
	}

	// Decode the generic map over the defaults: present keys overwrite
	// (even if zero), missing keys leave the defaults untouched.
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, false, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, false, &ConfigFileError{Path: path, Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ConfigFileError{Path: path, Cause: err}
	}

	return cfg, true, nil
}

// parseRaw parses JSON or YAML (chosen by extension) into a generic map.
func parseRaw(path string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
