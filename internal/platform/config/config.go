package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL        = "https://fastapi-research-evaluator.onrender.com"
	defaultTimeoutMinutes = 30
)

// defaultVenues is the fixed venue catalog offered when no config file
// overrides it.
var defaultVenues = []string{
	"NeurIPS", "ICML", "ICLR", "AAAI", "ACL", "EMNLP", "CVPR", "KDD",
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Venues  []string
}

// file is the on-disk YAML shape. Every field is optional; zero values fall
// back to the defaults above.
type file struct {
	BaseURL        string   `yaml:"base_url"`
	TimeoutMinutes int      `yaml:"timeout_minutes"`
	Venues         []string `yaml:"venues"`
}

func Default() Config {
	return Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeoutMinutes * time.Minute,
		Venues:  append([]string(nil), defaultVenues...),
	}
}

// Load reads the config file at path and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.TimeoutMinutes > 0 {
		cfg.Timeout = time.Duration(f.TimeoutMinutes) * time.Minute
	}
	if len(f.Venues) > 0 {
		cfg.Venues = f.Venues
	}
	return cfg, nil
}
