// Package config holds the settings shared by scenectl and any host embedding
// the scene core.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/pkg/encoding"
)

// Config is the root configuration document.
type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Decode DecodeConfig `json:"decode" yaml:"decode"`
	// Format is used when writing documents whose target has no extension.
	Format string `json:"format" yaml:"format"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

type DecodeConfig struct {
	// Mode is "strict" or "lenient".
	Mode     string `json:"mode" yaml:"mode"`
	FreshIDs bool   `json:"fresh_ids" yaml:"fresh_ids"`
	// Workers bounds parallel document loading; 0 means one per document.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// Default returns strict decoding, info logging and JSON output.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Encoding: "json"},
		Decode: DecodeConfig{Mode: scene.ModeStrict.String()},
		Format: string(encoding.FormatJSON),
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, ok := log.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log encoding %q", c.Log.Encoding)
	}
	if _, err := scene.ParseDecodeMode(c.Decode.Mode); err != nil {
		return err
	}
	if c.Decode.Workers < 0 {
		return fmt.Errorf("decode workers must not be negative, got %d", c.Decode.Workers)
	}
	if _, err := encoding.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the parsed log level. Call after Validate.
func (c Config) LogLevel() log.Level {
	l, _ := log.ParseLevel(c.Log.Level)
	return l
}

// OutputFormat returns the parsed default output format. Call after Validate.
func (c Config) OutputFormat() encoding.Format {
	f, err := encoding.ParseFormat(c.Format)
	if err != nil {
		return encoding.FormatJSON
	}
	return f
}

// DecodeOptions translates the decode section into scene decoder options.
func (c Config) DecodeOptions() []scene.DecodeOption {
	mode, _ := scene.ParseDecodeMode(c.Decode.Mode)
	opts := []scene.DecodeOption{scene.WithMode(mode)}
	if c.Decode.FreshIDs {
		opts = append(opts, scene.FreshIDs())
	}
	return opts
}
