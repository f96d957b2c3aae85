// Package config provides reading of the site configuration.
// Configuration lives in website.yaml next to the content directories;
// every field has a default so the file is optional.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "website.yaml"

// Site holds site-wide identity used in page rendering and the sitemap.
type Site struct {
	Title   string `yaml:"title,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Author  string `yaml:"author,omitempty"`
}

// Content holds the directories where markdown articles live.
type Content struct {
	Compendiums string `yaml:"compendiums,omitempty"`
	Thoughts    string `yaml:"thoughts,omitempty"`
}

// Data holds the paths of the generated metadata tables.
type Data struct {
	Compendiums string `yaml:"compendiums,omitempty"`
	Thoughts    string `yaml:"thoughts,omitempty"`
}

// Serve holds HTTP server options.
type Serve struct {
	Addr string `yaml:"addr,omitempty"`
}

// Config contains configuration for the website binary.
type Config struct {
	Site    Site    `yaml:"site,omitempty"`
	Content Content `yaml:"content,omitempty"`
	Data    Data    `yaml:"data,omitempty"`
	Serve   Serve   `yaml:"serve,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Site: Site{
			Title:   "matsjfunke",
			BaseURL: "https://matsjfunke.com",
			Author:  "matsjfunke",
		},
		Content: Content{
			Compendiums: "content/compendiums",
			Thoughts:    "content/thoughts",
		},
		Data: Data{
			Compendiums: "data/compendiums.json",
			Thoughts:    "data/thoughts.json",
		},
		Serve: Serve{
			Addr: ":8080",
		},
	}
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file is not an error; the defaults are returned as-is.
// Unknown keys are rejected so typos surface instead of being ignored.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var file Config
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	merge(cfg, &file)
	return cfg, nil
}

// merge overlays non-empty values from src onto dst.
func merge(dst, src *Config) {
	if src.Site.Title != "" {
		dst.Site.Title = src.Site.Title
	}
	if src.Site.BaseURL != "" {
		dst.Site.BaseURL = src.Site.BaseURL
	}
	if src.Site.Author != "" {
		dst.Site.Author = src.Site.Author
	}
	if src.Content.Compendiums != "" {
		dst.Content.Compendiums = src.Content.Compendiums
	}
	if src.Content.Thoughts != "" {
		dst.Content.Thoughts = src.Content.Thoughts
	}
	if src.Data.Compendiums != "" {
		dst.Data.Compendiums = src.Data.Compendiums
	}
	if src.Data.Thoughts != "" {
		dst.Data.Thoughts = src.Data.Thoughts
	}
	if src.Serve.Addr != "" {
		dst.Serve.Addr = src.Serve.Addr
	}
}
