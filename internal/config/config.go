package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr    string  `yaml:"addr"`
	Gateway Gateway `yaml:"gateway"`
	Limits  Limits  `yaml:"limits"`
}

type Gateway struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	// TokenParam names the environment variable holding the access token.
	TokenParam string `yaml:"token_param"`
	// Timeout of zero means no explicit upstream timeout; the transport
	// decides when to give up.
	Timeout time.Duration `yaml:"timeout"`
}

type Limits struct {
	MaxPromptLen  int `yaml:"max_prompt_len"`
	MinDimension  int `yaml:"min_dimension"`
	MaxDimension  int `yaml:"max_dimension"`
	DefaultWidth  int `yaml:"default_width"`
	DefaultHeight int `yaml:"default_height"`
}

func Default() Config {
	return Config{
		Addr: ":8000",
		Gateway: Gateway{
			BaseURL:    "https://api-inference.huggingface.co",
			Model:      "black-forest-labs/FLUX.1-schnell",
			TokenParam: "HF_TOKEN",
		},
		Limits: Limits{
			MaxPromptLen:  1000,
			MinDimension:  256,
			MaxDimension:  2048,
			DefaultWidth:  1024,
			DefaultHeight: 768,
		},
	}
}

// Load builds the config from defaults, an optional YAML file, and FLUXGATE_*
// environment overrides, in that order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	if v := os.Getenv("FLUXGATE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FLUXGATE_BASE_URL"); v != "" {
		cfg.Gateway.BaseURL = v
	}
	if v := os.Getenv("FLUXGATE_MODEL"); v != "" {
		cfg.Gateway.Model = v
	}
	if v := os.Getenv("FLUXGATE_TOKEN_PARAM"); v != "" {
		cfg.Gateway.TokenParam = v
	}
	if v := os.Getenv("FLUXGATE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing FLUXGATE_TIMEOUT: %w", err)
		}
		cfg.Gateway.Timeout = d
	}

	return cfg, nil
}
