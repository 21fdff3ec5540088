// Package config holds eqdef command settings loaded from TOML or YAML files.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ava12/eqdef/parser"
	"github.com/ava12/eqdef/render"
)

// EnvVar names environment variable holding default config file path.
const EnvVar = "EQDEF_CONFIG"

// Config holds the complete command configuration.
type Config struct {
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// ParserConfig holds parsing limits.
type ParserConfig struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
	// RequireEOF makes unconsumed input a failure.
	RequireEOF bool `toml:"require_eof" yaml:"require_eof"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{MaxDepth: parser.DefaultMaxDepth},
		Output: OutputConfig{Format: string(render.FormatDebug)},
		Log:    LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads configuration file, format is chosen by file extension (.toml, .yaml, or .yml).
// Values missing in file keep their defaults. Empty path means the path from EQDEF_CONFIG
// environment variable or no file at all.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	content, e := os.ReadFile(path)
	if e != nil {
		return nil, fmt.Errorf("failed to read config: %w", e)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, e = toml.Decode(string(content), cfg)
	case ".yaml", ".yml":
		e = yaml.Unmarshal(content, cfg)
	default:
		e = fmt.Errorf("unsupported config file type %q", ext)
	}
	if e != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, e)
	}

	if e := cfg.Validate(); e != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, e)
	}

	return cfg, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	if c.Parser.MaxDepth <= 0 {
		return fmt.Errorf("parser.max_depth must be positive, got %d", c.Parser.MaxDepth)
	}

	if _, e := render.ParseFormat(c.Output.Format); e != nil {
		return e
	}

	if _, e := c.Log.SlogLevel(); e != nil {
		return e
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return nil
}

// SlogLevel converts level name, empty name means warn.
func (lc LogConfig) SlogLevel() (slog.Level, error) {
	if lc.Level == "" {
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if e := level.UnmarshalText([]byte(lc.Level)); e != nil {
		return 0, fmt.Errorf("unknown log level %q", lc.Level)
	}
	return level, nil
}

// NewLogger creates a text or JSON logger writing to w.
func (lc LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, e := lc.SlogLevel()
	if e != nil {
		return nil, e
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(lc.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
