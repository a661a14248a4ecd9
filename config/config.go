// Package config reads the settings that tell the test harness where the demo API lives.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// BaseURLKey is the name of the base URL setting, both in config files and in the environment.
const BaseURLKey = "BASE_URL"

// DefaultFile is the config file used when none is specified.
const DefaultFile = "test-config.json"

// ErrMissingBaseURL means that no configuration source provided BaseURLKey.
var ErrMissingBaseURL = errors.New("missing " + BaseURLKey)

// Config is the test run configuration.
type Config struct {
	BaseURL string `json:"BASE_URL" yaml:"BASE_URL"`
}

// Error is returned for any problem with the configuration. The test run cannot start if
// there is one.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configuration error: %s", e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options controls where Load looks for settings.
type Options struct {
	// File is a JSON or YAML file. If it is DefaultFile or empty and does not exist, it is
	// skipped; any other path must exist.
	File string

	// EnvFile is an optional dotenv file. Its BASE_URL overrides the config file, and is
	// itself overridden by a non-blank BASE_URL in the process environment.
	EnvFile string

	// BaseURL, if set, overrides every other source.
	BaseURL string
}

// Load builds a Config from, in increasing order of precedence: the config file, the env
// file, the environment, and Options.BaseURL. The process environment is not modified.
func Load(opts Options) (Config, error) {
	var cfg Config

	path := opts.File
	if path == "" {
		path = DefaultFile
	}
	fileCfg, err := parseFile(path)
	switch {
	case err == nil:
		cfg = fileCfg
	case errors.Is(err, os.ErrNotExist) && path == DefaultFile:
	default:
		return Config{}, &Error{Path: path, Err: err}
	}

	if opts.EnvFile != "" {
		vars, err := godotenv.Read(opts.EnvFile)
		if err != nil {
			return Config{}, &Error{Path: opts.EnvFile, Err: fmt.Errorf("read env file: %w", err)}
		}
		if v := strings.TrimSpace(vars[BaseURLKey]); v != "" {
			cfg.BaseURL = v
		}
	}
	// a blank variable counts as unset
	if v := strings.TrimSpace(os.Getenv(BaseURLKey)); v != "" {
		cfg.BaseURL = v
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		return Config{}, &Error{Err: ErrMissingBaseURL}
	}
	return cfg, nil
}

func parseFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse json config: %w", err)
		}
	}
	return cfg, nil
}
