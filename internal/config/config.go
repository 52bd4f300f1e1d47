// Package config provides configuration loading and structs for the
// Osusume server and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/osusume/internal/models"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Filter  FilterConfig  `yaml:"filter"`
	Ranking RankingConfig `yaml:"ranking"`
	Search  SearchConfig  `yaml:"search"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig holds the source document settings.
type CatalogConfig struct {
	// Path is the catalog document (.json/.jsonld, .db/.sqlite, .xlsx).
	Path string `yaml:"path"`
	// GraphKey is the top-level collection field for JSON catalogs.
	GraphKey string `yaml:"graph_key"`
	// Watch reloads the catalog when the file changes (server mode).
	Watch bool `yaml:"watch"`
}

// FilterConfig holds the default record filter.
type FilterConfig struct {
	MinPages            int  `yaml:"min_pages"`
	MaxPages            int  `yaml:"max_pages"`
	IncludeMissingPages bool `yaml:"include_missing_pages"`
}

// PageRange returns the configured page range.
func (f FilterConfig) PageRange() models.PageRange {
	return models.PageRange{Min: f.MinPages, Max: f.MaxPages}
}

// RankingConfig holds facet choice, weights, and the recency blend.
type RankingConfig struct {
	// Facets selects which facets are indexed and scored; empty means the
	// default set (subjects, description, creator, publisher).
	Facets []models.Facet `yaml:"facets"`
	// Weights are relative per-facet weights; all-zero falls back to the
	// default profile.
	Weights      map[models.Facet]float64 `yaml:"weights"`
	RecencyRatio float64                  `yaml:"recency_ratio"`
	DefaultTopN  int                      `yaml:"default_top_n"`
	// RelatedKeywords is how many related subject terms each result gets.
	RelatedKeywords int `yaml:"related_keywords"`
	// ReferenceYear fixes the recency reference year; 0 means the current
	// year at query time.
	ReferenceYear int `yaml:"reference_year"`
}

// Profile returns the configured weight profile.
func (r RankingConfig) Profile() models.WeightProfile {
	return models.WeightProfile{Weights: r.Weights, RecencyRatio: r.RecencyRatio}
}

// SearchConfig holds candidate lookup settings.
type SearchConfig struct {
	CandidateLimit int `yaml:"candidate_limit"`
}

// Load reads and parses the config file at path, expands the catalog
// path, and applies defaults. Returns an error if the file cannot be
// read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path, filepath.Dir(path))
	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
