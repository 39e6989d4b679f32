package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/mailbox-postage/internal/postage"
)

const (
	defaultLogLevel    = "info"
	defaultLogEncoding = "json"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	LogLevel    string
	LogEncoding string
	Items       []postage.Spec
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	LogLevel    string     `yaml:"log_level"`
	LogEncoding string     `yaml:"log_encoding"`
	Items       []yamlItem `yaml:"items"`
}

// yamlItem represents a single entry of the items section.
type yamlItem struct {
	Kind        string  `yaml:"kind"`
	Weight      float64 `yaml:"weight"`
	Method      string  `yaml:"method"`
	Destination string  `yaml:"destination"`
	Format      string  `yaml:"format"`
	Volume      float64 `yaml:"volume"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	LogLevel    *string
	LogEncoding *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
		Items:       DefaultItems(),
	}
}

// DefaultItems returns the built-in mailbox manifest: two letters, two
// advertisements and two parcels, two of which lack a destination.
func DefaultItems() []postage.Spec {
	return []postage.Spec{
		{Kind: string(postage.KindLetter), Weight: 200, Method: postage.Express, Destination: "Toronto, 1009 Pully", Format: postage.A3},
		{Kind: string(postage.KindLetter), Weight: 800, Method: postage.Normal, Destination: "", Format: postage.A4},
		{Kind: string(postage.KindAdvertisement), Weight: 1500, Method: postage.Express, Destination: "Muskoka, 1913 Saillon"},
		{Kind: string(postage.KindAdvertisement), Weight: 3000, Method: postage.Normal, Destination: ""},
		{Kind: string(postage.KindParcel), Weight: 5000, Method: postage.Express, Destination: "Vancouver, 1950 Sion", Volume: 85},
		{Kind: string(postage.KindParcel), Weight: 3000, Method: postage.Express, Destination: "Montreal, 2800 Delemont", Volume: 100},
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct. An items
// section, when present, replaces the default manifest entirely.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if yamlCfg.LogEncoding != "" {
		cfg.LogEncoding = yamlCfg.LogEncoding
	}

	if yamlCfg.Items == nil {
		return nil
	}
	if len(yamlCfg.Items) == 0 {
		return ErrNoItems
	}

	items := make([]postage.Spec, 0, len(yamlCfg.Items))
	for i, it := range yamlCfg.Items {
		spec := postage.Spec{
			Kind:        it.Kind,
			Weight:      it.Weight,
			Method:      postage.ShippingMethod(it.Method),
			Destination: it.Destination,
			Format:      postage.Format(it.Format),
			Volume:      it.Volume,
		}
		if _, err := postage.New(spec); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, spec)
	}
	cfg.Items = items

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if encoding := strings.TrimSpace(os.Getenv("LOG_ENCODING")); encoding != "" {
		cfg.LogEncoding = encoding
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.LogEncoding != nil && *overrides.LogEncoding != "" {
		cfg.LogEncoding = *overrides.LogEncoding
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	switch cfg.LogEncoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogEncoding, cfg.LogEncoding)
	}
	if len(cfg.Items) == 0 {
		return ErrNoItems
	}
	return nil
}
