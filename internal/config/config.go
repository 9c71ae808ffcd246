// Package config handles loading and parsing of clispect configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/clispect/clispect/internal/cerrors"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".clispect.yml",
	".clispect.yaml",
	".clispect.toml",
	".clispect.json",
}

// Formats accepted for schema output.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the tool settings.
type Config struct {
	// Format is the default output format for dumped schemas.
	Format string `koanf:"format"`
	// Color enables styled terminal output.
	Color bool `koanf:"color"`
	// MaxDepth limits tree rendering depth. Zero means unlimited.
	MaxDepth int `koanf:"max_depth"`
	// IncludeHidden includes hidden commands when introspecting a CLI.
	IncludeHidden bool `koanf:"include_hidden"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Format: FormatJSON,
		Color:  true,
	}
}

// Discover returns the path of the first supported config file in dir,
// or false if none exists.
func Discover(dir string) (string, bool) {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load reads a config file, choosing the parser from the extension.
func Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, cerrors.NewConfigurationError(path, fmt.Sprintf("failed to load config %s", path), err)
	}

	return unmarshal(k)
}

// LoadBytes parses config content held in memory. The format is one of
// "yaml", "toml" or "json".
func LoadBytes(content []byte, format string) (*Config, error) {
	var parser koanf.Parser
	switch format {
	case "yaml", "yml":
		parser = yaml.Parser()
	case "toml":
		parser = toml.Parser()
	case "json":
		parser = json.Parser()
	default:
		return nil, cerrors.NewValidationError("format", fmt.Sprintf("unsupported config format: %s", format), nil)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), parser); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return unmarshal(k)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, cerrors.NewConfigurationError(path, fmt.Sprintf("unsupported config file: %s", path), nil)
	}
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return cerrors.NewValidationError("format", fmt.Sprintf("invalid format %q: must be %s or %s", c.Format, FormatJSON, FormatYAML), nil)
	}
	if c.MaxDepth < 0 {
		return cerrors.NewValidationError("max_depth", fmt.Sprintf("invalid max_depth %d: must not be negative", c.MaxDepth), nil)
	}
	return nil
}
