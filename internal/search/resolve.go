// resolve.go turns search matches into full-content results for the tool
// surfaces. Matches referencing articles are resolved to their complete
// bodies; the item's summary stands in when the file has gone missing.

package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matsjfunke/website/internal/registry"
)

// FullResult is a search match with its body content resolved.
type FullResult struct {
	Title   string
	Type    Type
	URL     string
	Content string
}

// Resolve fetches full content for every match concurrently. Output order
// always equals input order regardless of which fetch finishes first, and a
// failed fetch degrades to the item's description instead of failing the
// whole batch.
func Resolve(ctx context.Context, reg *registry.Registry, matches []Item) []FullResult {
	results := make([]FullResult, len(matches))

	g, _ := errgroup.WithContext(ctx)
	for i, item := range matches {
		g.Go(func() error {
			results[i] = resolveOne(reg, item)
			return nil
		})
	}
	// Workers never return errors; fallback handling happens per item.
	_ = g.Wait()

	return results
}

func resolveOne(reg *registry.Registry, item Item) FullResult {
	r := FullResult{
		Title:   item.Title,
		Type:    item.Type,
		URL:     item.URL,
		Content: item.Description,
	}

	switch item.Type {
	case TypeCompendium:
		if body, err := reg.CompendiumBody(strings.TrimPrefix(item.ID, "compendium-")); err == nil {
			r.Content = body
		}
	case TypeThought:
		if body, err := reg.ThoughtBody(strings.TrimPrefix(item.ID, "thought-")); err == nil {
			r.Content = body
		}
	case TypeBook:
		if i, err := strconv.Atoi(strings.TrimPrefix(item.ID, "book-")); err == nil {
			if book, ok := reg.Book(i); ok {
				r.Content = fmt.Sprintf("**%s**\n\n%s", book.Title, book.Thoughts)
			}
		}
	}

	return r
}

// Report renders resolved results as the single text block returned by the
// search_content tool.
func Report(query string, results []FullResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results for \"%s\":\n\n", len(results), query)

	blocks := make([]string, len(results))
	for i, r := range results {
		blocks[i] = fmt.Sprintf("# %s (%s)\nURL: %s\n\n%s\n\n---\n", r.Title, r.Type, r.URL, r.Content)
	}
	b.WriteString(strings.Join(blocks, "\n"))

	return b.String()
}
