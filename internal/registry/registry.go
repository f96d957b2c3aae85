// Package registry holds the site's content tables: compendiums and
// thoughts extracted from markdown files, and the authored book list.
//
// A Registry is built once at startup and never mutated afterwards; every
// consumer (pages, search, RPC, MCP) receives it by injection. The only way
// content changes is regenerating the tables out of band and restarting.
package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/matsjfunke/website/internal/config"
	"github.com/matsjfunke/website/internal/content"
)

// Book is a reading recommendation. Books are authored directly in the book
// table rather than extracted from files, and are identified by position -
// they have no slug and no individual route.
type Book struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Thoughts string `json:"thoughts"`
}

// Registry is the immutable collection of content tables.
type Registry struct {
	compendiums []content.Metadata
	thoughts    []content.Metadata
	books       []Book

	compendiumDir string
	thoughtDir    string
}

// New builds a registry from explicit tables. Used by tests and by Load.
func New(cfg *config.Config, compendiums, thoughts []content.Metadata) *Registry {
	return &Registry{
		compendiums:   compendiums,
		thoughts:      thoughts,
		books:         books,
		compendiumDir: cfg.Content.Compendiums,
		thoughtDir:    cfg.Content.Thoughts,
	}
}

// Load builds the registry for the current configuration. Generated tables
// are preferred; when a table is absent the content directory is extracted
// directly, and when that fails too the kind is served empty. No content is
// never a fatal state.
func Load(cfg *config.Config) *Registry {
	return New(cfg,
		loadKind(content.KindCompendium, cfg.Data.Compendiums, cfg.Content.Compendiums),
		loadKind(content.KindThought, cfg.Data.Thoughts, cfg.Content.Thoughts),
	)
}

func loadKind(kind content.Kind, tablePath, dir string) []content.Metadata {
	if metas, err := readTable(tablePath); err == nil {
		return metas
	}

	metas, err := content.Extract(dir, kind)
	if err != nil {
		slog.Warn("no content for kind", "kind", kind, "error", err)
		return nil
	}
	return metas
}

// readTable reads a generated metadata table from disk.
func readTable(path string) ([]content.Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var metas []content.Metadata
	if err := json.Unmarshal(raw, &metas); err != nil {
		return nil, fmt.Errorf("parse table %s: %w", path, err)
	}
	return metas, nil
}

// Compendiums returns the compendium table, ordered by date descending.
func (r *Registry) Compendiums() []content.Metadata { return r.compendiums }

// Thoughts returns the thought table, ordered by date descending.
func (r *Registry) Thoughts() []content.Metadata { return r.thoughts }

// Books returns the authored book table in its fixed order.
func (r *Registry) Books() []Book { return r.books }

// Book returns the book at index i, or false when out of range.
func (r *Registry) Book(i int) (Book, bool) {
	if i < 0 || i >= len(r.books) {
		return Book{}, false
	}
	return r.books[i], true
}

// CompendiumBody fetches the full article body for a compendium slug.
func (r *Registry) CompendiumBody(slug string) (string, error) {
	return content.Body(r.compendiumDir, content.KindCompendium, slug)
}

// ThoughtBody fetches the full article body for a thought slug.
func (r *Registry) ThoughtBody(slug string) (string, error) {
	return content.Body(r.thoughtDir, content.KindThought, slug)
}
