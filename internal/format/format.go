// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// content lookup while this package handles presentation concerns like
// column alignment.
package format

import (
	"fmt"
	"io"

	"github.com/matsjfunke/website/internal/content"
	"github.com/matsjfunke/website/internal/registry"
	"github.com/matsjfunke/website/internal/search"
)

// List prints content entries in simple list format.
func List(w io.Writer, metas []content.Metadata) error {
	for _, m := range metas {
		fmt.Fprintf(w, "%s  %s\n", m.Slug, m.Title)
	}
	return nil
}

// Long prints content entries in long format with slug, date, author, and
// title.
func Long(w io.Writer, metas []content.Metadata) error {
	if len(metas) == 0 {
		return nil
	}

	// Find max slug length for alignment
	maxSlug := 4 // minimum "SLUG"
	for _, m := range metas {
		if len(m.Slug) > maxSlug {
			maxSlug = len(m.Slug)
		}
	}

	// Print header
	fmt.Fprintf(w, "%-*s  %-10s  %-12s  %s\n", maxSlug, "SLUG", "DATE", "AUTHOR", "TITLE")

	for _, m := range metas {
		date := m.Date
		if date == "" {
			date = "-"
		}
		author := m.Author
		if author == "" {
			author = "-"
		}
		fmt.Fprintf(w, "%-*s  %-10s  %-12s  %s\n", maxSlug, m.Slug, date, author, m.Title)
	}
	return nil
}

// Books prints the book list with a short excerpt of the takeaway.
func Books(w io.Writer, books []registry.Book) error {
	for i, b := range books {
		thoughts := b.Thoughts
		if len(thoughts) > 80 {
			thoughts = thoughts[:77] + "..."
		}
		fmt.Fprintf(w, "%2d  %s\n    %s\n", i+1, b.Title, thoughts)
	}
	return nil
}

// SearchResults prints search matches with their type label and URL.
func SearchResults(w io.Writer, items []search.Item) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results.")
		return nil
	}

	// Find max title length for alignment
	maxTitle := 5 // minimum "TITLE"
	for _, item := range items {
		if len(item.Title) > maxTitle {
			maxTitle = len(item.Title)
		}
	}

	fmt.Fprintf(w, "%-*s  %-10s  %s\n", maxTitle, "TITLE", "TYPE", "URL")
	for _, item := range items {
		fmt.Fprintf(w, "%-*s  %-10s  %s\n", maxTitle, item.Title, item.Type.Label(), item.URL)
	}
	return nil
}

// Slugs prints just slugs, one per line.
func Slugs(w io.Writer, metas []content.Metadata) error {
	for _, m := range metas {
		fmt.Fprintln(w, m.Slug)
	}
	return nil
}
