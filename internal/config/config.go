// Package config loads the optional .tinyrc.yaml project file and merges it
// with command-line flags. Precedence is flag > file > built-in default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the serializer's wire format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// Config holds every setting the CLI driver needs that can come from either
// a flag or the project file.
type Config struct {
	Format     Format `yaml:"format"`
	Simplified bool   `yaml:"simplified"`
	Color      bool   `yaml:"color"`
	LogLevel   string `yaml:"log_level"`
}

// Default returns the built-in baseline, used when neither a flag nor the
// project file sets a field.
func Default() Config {
	return Config{
		Format:     FormatJSON,
		Simplified: true,
		Color:      true,
		LogLevel:   "info",
	}
}

// Load reads .tinyrc.yaml from path (typically the current directory) and
// overlays it on top of Default. A missing file is not an error — it just
// means every field stays at its default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// FlagOverrides carries the CLI flags that, when explicitly set, take
// precedence over both the project file and the default.
type FlagOverrides struct {
	Format     *Format
	Simplified *bool
	Color      *bool
	LogLevel   *string
}

// Apply overlays any set override onto cfg and returns the result. cfg is
// left unmodified.
func (o FlagOverrides) Apply(cfg Config) Config {
	if o.Format != nil {
		cfg.Format = *o.Format
	}
	if o.Simplified != nil {
		cfg.Simplified = *o.Simplified
	}
	if o.Color != nil {
		cfg.Color = *o.Color
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	return cfg
}
