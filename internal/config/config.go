// Package config loads CLI configuration for docnorm. Settings come from an
// optional docnorm.yaml next to the documented sources, with DOCNORM_*
// environment variables taking precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-docnorm/internal/example"
)

// Config is the complete docnorm CLI configuration.
type Config struct {
	Synonyms     SynonymsConfig `json:"synonyms" mapstructure:"synonyms"`
	LoaderPrefix string         `json:"loaderPrefix" mapstructure:"loaderPrefix"`
	Logging      LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// SynonymsConfig lists the tag titles folded into the parameter and return
// groups during normalization.
type SynonymsConfig struct {
	Params  []string `json:"params" mapstructure:"params"`
	Returns []string `json:"returns" mapstructure:"returns"`
}

// LoggingConfig controls warning output.
type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Synonyms: SynonymsConfig{
			Params:  []string{"param", "arg", "argument"},
			Returns: []string{"return", "returns"},
		},
		LoaderPrefix: example.LoaderPrefix,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads docnorm.yaml from the given directory. A missing file yields the
// defaults; a malformed file is an error.
func Load(dir string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("synonyms.params", defaults.Synonyms.Params)
	v.SetDefault("synonyms.returns", defaults.Synonyms.Returns)
	v.SetDefault("loaderPrefix", defaults.LoaderPrefix)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("docnorm")
	v.SetConfigType("yaml")
	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("DOCNORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read docnorm.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
