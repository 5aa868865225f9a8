package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to the flag namespace.
type FileConfig struct {
	Origin        string   `yaml:"origin" json:"origin"`
	Publication   string   `yaml:"publication" json:"publication"`
	Author        string   `yaml:"author" json:"author"`
	ExcludedSlugs []string `yaml:"excludedSlugs" json:"excludedSlugs"`
	Cookies       string   `yaml:"cookies" json:"cookies"`

	HTTP struct {
		UserAgent string        `yaml:"userAgent" json:"userAgent"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout"`
		Attempts  int           `yaml:"attempts" json:"attempts"`
	} `yaml:"http" json:"http"`

	Feed *struct {
		Enable *bool `yaml:"enable" json:"enable"`
	} `yaml:"feed" json:"feed"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still carrying their defaults. Flags should already have been parsed;
// this lets the file supply values while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.Origin == "" || cfg.Origin == DefaultOrigin) && fc.Origin != "" {
		cfg.Origin = fc.Origin
	}
	if (cfg.Publication == "" || cfg.Publication == DefaultPublication) && fc.Publication != "" {
		cfg.Publication = fc.Publication
	}
	if (cfg.Author == "" || cfg.Author == DefaultAuthor) && fc.Author != "" {
		cfg.Author = fc.Author
	}
	if len(fc.ExcludedSlugs) > 0 && (len(cfg.ExcludedSlugs) == 0 || (len(cfg.ExcludedSlugs) == 1 && cfg.ExcludedSlugs[0] == DefaultExcludedSlug)) {
		cfg.ExcludedSlugs = append([]string{}, fc.ExcludedSlugs...)
	}
	if (cfg.CookiesPath == "" || cfg.CookiesPath == DefaultCookiesPath) && fc.Cookies != "" {
		cfg.CookiesPath = fc.Cookies
	}

	if cfg.UserAgent == "" && fc.HTTP.UserAgent != "" {
		cfg.UserAgent = fc.HTTP.UserAgent
	}
	if (cfg.PerRequestTimeout == 0 || cfg.PerRequestTimeout == DefaultTimeout) && fc.HTTP.Timeout > 0 {
		cfg.PerRequestTimeout = fc.HTTP.Timeout
	}
	if (cfg.MaxAttempts == 0 || cfg.MaxAttempts == DefaultMaxAttempts) && fc.HTTP.Attempts > 0 {
		cfg.MaxAttempts = fc.HTTP.Attempts
	}

	// Feed fallback: default on; allow the file to disable it explicitly
	if fc.Feed != nil && fc.Feed.Enable != nil {
		cfg.FeedFallback = *fc.Feed.Enable
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	origin := strings.TrimSpace(cfg.Origin)
	if origin == "" {
		return errors.New("config: publication origin is required")
	}
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: origin %q is not an http(s) URL", cfg.Origin)
	}
	if strings.TrimSpace(cfg.Author) == "" {
		return errors.New("config: author is required")
	}
	if cfg.MaxAttempts < 0 || cfg.PerRequestTimeout < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
