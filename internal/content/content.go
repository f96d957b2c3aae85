// Package content reads markdown articles with YAML front-matter and derives
// the metadata tables the rest of the site consumes.
//
// Extraction is a build-time concern: the generate command runs it and writes
// the resulting tables to disk, and the registry falls back to it when no
// generated tables exist. Article bodies are deliberately not part of the
// extracted metadata - they are fetched on demand by slug so the search path
// stays cheap.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ext is the article file extension. Files with any other extension are
// ignored during extraction.
const Ext = ".mdx"

// DateFormat is the ISO date layout used in front-matter and metadata.
const DateFormat = "2006-01-02"

// DefaultAuthor is substituted when front-matter has no author.
const DefaultAuthor = "matsjfunke"

// Kind identifies a content collection.
type Kind string

const (
	KindCompendium Kind = "compendium"
	KindThought    Kind = "thought"
)

// Metadata is one article's front-matter with defaults applied.
// Compendiums carry Description, thoughts carry Abstract; the other field
// stays empty and is omitted from serialised tables.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Abstract    string `json:"abstract,omitempty"`
	Date        string `json:"date"`
	Author      string `json:"author"`
	Slug        string `json:"slug"`
}

// Summary returns whichever of Description or Abstract the record carries.
func (m Metadata) Summary() string {
	if m.Description != "" {
		return m.Description
	}
	return m.Abstract
}

// NotFoundError reports a slug with no corresponding article file.
type NotFoundError struct {
	Kind Kind
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Slug)
}

// frontMatter is the set of recognised front-matter keys. Anything else in
// the block is dropped rather than passed through.
type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Abstract    string `yaml:"abstract"`
	Date        string `yaml:"date"`
	Author      string `yaml:"author"`
}

// Extract reads every article of the given kind from dir and returns their
// metadata sorted by date descending. Ties keep directory-listing order.
//
// A missing or unreadable directory is returned as an error; callers treat
// it as "no content" and log a diagnostic rather than failing.
func Extract(dir string, kind Kind) ([]Metadata, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var metas []Metadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), Ext)
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}

		var fm frontMatter
		if _, err := frontmatter.Parse(bytes.NewReader(raw), &fm); err != nil {
			// Malformed front-matter block: treat the file as having none,
			// defaults cover every field.
			fm = frontMatter{}
		}

		metas = append(metas, withDefaults(kind, slug, fm))
	}

	sortByDate(metas)
	return metas, nil
}

// Body returns the article body for slug with the front-matter block
// stripped. The caller decides what to fall back to when the article does
// not exist.
func Body(dir string, kind Kind, slug string) (string, error) {
	if !ValidSlug(slug) {
		return "", &NotFoundError{Kind: kind, Slug: slug}
	}

	raw, err := os.ReadFile(filepath.Join(dir, slug+Ext))
	if errors.Is(err, fs.ErrNotExist) {
		return "", &NotFoundError{Kind: kind, Slug: slug}
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", slug, err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return string(raw), nil
	}
	return string(body), nil
}

// ValidSlug reports whether s is a safe URL segment: lowercase letters,
// digits, dots and dashes, nothing that could escape the content directory.
func ValidSlug(s string) bool {
	if s == "" || strings.Contains(s, "..") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '.':
		default:
			return false
		}
	}
	return true
}

// withDefaults assembles a Metadata record, substituting the documented
// default for every missing recognised field.
func withDefaults(kind Kind, slug string, fm frontMatter) Metadata {
	m := Metadata{
		Title:  fm.Title,
		Date:   fm.Date,
		Author: fm.Author,
		Slug:   slug,
	}
	if m.Title == "" {
		m.Title = Titleize(slug)
	}
	if m.Date == "" {
		m.Date = time.Now().Format(DateFormat)
	}
	if m.Author == "" {
		m.Author = DefaultAuthor
	}

	switch kind {
	case KindThought:
		m.Abstract = fm.Abstract
		if m.Abstract == "" {
			m.Abstract = "No abstract available."
		}
	default:
		m.Description = fm.Description
		if m.Description == "" {
			m.Description = fmt.Sprintf("A compendium about %s.", strings.ReplaceAll(slug, "-", " "))
		}
	}
	return m
}

// Titleize turns a slug into a display title: dashes become spaces and each
// word is title-cased.
func Titleize(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// sortByDate orders metas by date descending. The sort is stable so records
// sharing a date keep their discovery order. Unparseable dates sort last.
func sortByDate(metas []Metadata) {
	sort.SliceStable(metas, func(i, j int) bool {
		di, erri := time.Parse(DateFormat, metas[i].Date)
		dj, errj := time.Parse(DateFormat, metas[j].Date)
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return di.After(dj)
	})
}
