package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "dayplanner/internal/platform/errors"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	DefaultStartHour = 9
	DefaultEndHour   = 17

	envPrefix = "DAYPLANNER_"
)

type Config struct {
	DataDir   string
	Backend   string
	KVDir     string
	DBPath    string
	LogPath   string
	StartHour int
	EndHour   int
	LogLevel  string
	LogFormat string
}

// Overrides carries explicit command-line values; zero values leave the loaded config alone.
type Overrides struct {
	Backend   string
	StartHour *int
	EndHour   *int
	LogLevel  string
}

type fileConfig struct {
	Backend   string `yaml:"backend"`
	StartHour *int   `yaml:"start_hour"`
	EndHour   *int   `yaml:"end_hour"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultDataDir follows XDG_DATA_HOME and falls back to ~/.local/share/dayplanner.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "dayplanner")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dayplanner"
	}
	return filepath.Join(home, ".local", "share", "dayplanner")
}

func New(dataDir string) (Config, error) {
	return Load(dataDir, Overrides{})
}

// Load layers defaults, <data>/config.yaml, <data>/.env, DAYPLANNER_* variables and overrides.
func Load(dataDir string, overrides Overrides) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:   dataDir,
		Backend:   BackendFile,
		KVDir:     filepath.Join(dataDir, ".dayplanner", "kv"),
		DBPath:    filepath.Join(dataDir, ".dayplanner", "dayplanner.db"),
		LogPath:   filepath.Join(dataDir, ".dayplanner", "dayplanner.log"),
		StartHour: DefaultStartHour,
		EndHour:   DefaultEndHour,
		LogLevel:  "info",
		LogFormat: "text",
	}
	if err := cfg.applyFile(filepath.Join(dataDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	dotenv, err := readDotEnv(filepath.Join(dataDir, ".env"))
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}); err != nil {
		return Config{}, err
	}
	cfg.applyOverrides(overrides)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the backend name. StartHour/EndHour are checked when the
// schedule window is built from them.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", apperrors.ErrInvalidInput, c.Backend)
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if fc.Backend != "" {
		c.Backend = strings.ToLower(fc.Backend)
	}
	if fc.StartHour != nil {
		c.StartHour = *fc.StartHour
	}
	if fc.EndHour != nil {
		c.EndHour = *fc.EndHour
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "BACKEND"); ok && v != "" {
		c.Backend = strings.ToLower(v)
	}
	for name, dst := range map[string]*int{"START_HOUR": &c.StartHour, "END_HOUR": &c.EndHour} {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", apperrors.ErrInvalidInput, envPrefix, name, v)
		}
		*dst = n
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "LOG_FORMAT"); ok && v != "" {
		c.LogFormat = v
	}
	return nil
}

func (c *Config) applyOverrides(o Overrides) {
	if o.Backend != "" {
		c.Backend = strings.ToLower(o.Backend)
	}
	if o.StartHour != nil {
		c.StartHour = *o.StartHour
	}
	if o.EndHour != nil {
		c.EndHour = *o.EndHour
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}
