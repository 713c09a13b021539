package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the site-level configuration for a blog workspace.
type Config struct {
	Version int           `yaml:"version"`
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
}

// SiteConfig holds the metadata the external site generator also consumes.
type SiteConfig struct {
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	BaseURL string `yaml:"base_url"`
}

// ContentConfig controls where scaffolds land and how they are marked up.
type ContentConfig struct {
	PostsDir      string `yaml:"posts_dir"`
	DefaultLayout string `yaml:"default_layout"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Site: SiteConfig{
			Title: "My Blog",
		},
		Content: ContentConfig{
			PostsDir:      "content/posts",
			DefaultLayout: "post",
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to sensible defaults when the YAML
// omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Content.PostsDir == "" {
		c.Content.PostsDir = defaults.Content.PostsDir
	}
	if c.Content.DefaultLayout == "" {
		c.Content.DefaultLayout = defaults.Content.DefaultLayout
	}
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
