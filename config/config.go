// Package config holds the linkgraph runtime settings: where the network
// comes from, how reports are shaped, and how logs are written.
//
// Settings are resolved in three layers: built-in defaults, an optional
// YAML file, then LINKGRAPH_* environment variables. The result is checked
// with struct-tag validation before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	KindHTTP = "http"
	KindFile = "file"
)

// Environment variables consulted by Resolve.
const (
	EnvSourceKind = "LINKGRAPH_SOURCE_KIND"
	EnvSourceURL  = "LINKGRAPH_SOURCE_URL"
	EnvSourcePath = "LINKGRAPH_SOURCE_PATH"
	EnvLogLevel   = "LINKGRAPH_LOG_LEVEL"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// SourceConfig selects and tunes the adjacency provider.
type SourceConfig struct {
	// Kind is "http" or "file".
	Kind string `yaml:"kind" validate:"oneof=http file"`

	// URL is the graph endpoint, required for kind http.
	URL string `yaml:"url" validate:"required_if=Kind http"`

	// Path is the adjacency file, required for kind file.
	Path string `yaml:"path" validate:"required_if=Kind file"`

	// Field names the document field holding the mapping; empty means the whole document.
	Field string `yaml:"field"`

	// Timeout bounds one HTTP attempt.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	// Retries is how many times a transient HTTP failure is retried.
	Retries int `yaml:"retries" validate:"gte=0,lte=20"`
}

// ReportConfig shapes the connection report.
type ReportConfig struct {
	// MaxDegree is the deepest connection level listed.
	MaxDegree int `yaml:"max_degree" validate:"gte=1,lte=10"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error dpanic panic fatal"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Kind:    KindHTTP,
			URL:     "http://localhost:3338/graph",
			Field:   "adjacency_map",
			Timeout: 10 * time.Second,
			Retries: 3,
		},
		Report: ReportConfig{MaxDegree: 3},
		Log:    LogConfig{Level: "warn"},
	}
}

// Load resolves the configuration with Resolve, then validates it.
func Load(path string) (Config, error) {
	cfg, err := Resolve(path)
	if err != nil {
		return cfg, err
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Resolve layers defaults, the file at path (skipped when path is empty) and
// the environment, without validating. Callers that apply further overrides
// validate once afterwards.
func Resolve(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	return cfg, nil
}

// decode overlays a YAML document onto cfg, rejecting unknown keys.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ApplyEnv overrides fields from the LINKGRAPH_* variables found by lookup.
// Setting only a source path switches the kind to file.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvSourceURL); ok && v != "" {
		c.Source.URL = v
	}
	if v, ok := lookup(EnvSourcePath); ok && v != "" {
		c.Source.Path = v
		c.Source.Kind = KindFile
	}
	if v, ok := lookup(EnvSourceKind); ok && v != "" {
		c.Source.Kind = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

var validate = validator.New()

// Validate checks every field constraint and reports all violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
