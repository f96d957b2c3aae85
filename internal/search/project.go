// project.go maps the content registry into searchable items.
//
// Output order is concatenation order: static pages, books, compendiums,
// thoughts. It is never re-sorted globally, so search results are stable
// within a category but carry no overall relevance ordering.

package search

import (
	"fmt"
	"strings"

	"github.com/matsjfunke/website/internal/registry"
)

// Pages are the static page descriptors included in every projection.
// They exist nowhere in the registry; their ids, descriptions and keyword
// sets are fixed.
var Pages = []Item{
	{
		ID:          "home",
		Title:       "Home",
		Description: "Welcome to my personal website",
		Type:        TypePage,
		URL:         "/",
		Keywords:    []string{"home", "main", "welcome", "about"},
	},
	{
		ID:          "compendiums",
		Title:       "Compendiums",
		Description: "A collection of concise comprehensive guides and references",
		Type:        TypePage,
		URL:         "/compendiums",
		Keywords:    []string{"guides", "references", "documentation", "learning"},
	},
	{
		ID:          "books",
		Title:       "Books",
		Description: "Some of my dearest reads and what they taught me",
		Type:        TypePage,
		URL:         "/books",
		Keywords:    []string{"reading", "literature", "recommendations", "learning"},
	},
	{
		ID:          "thoughts",
		Title:       "Thoughts",
		Description: "A collection of my thoughts on technology, life, and everything in between",
		Type:        TypePage,
		URL:         "/thoughts",
		Keywords:    []string{"blog", "ideas", "opinions", "technology", "life"},
	},
}

// Project returns the full searchable collection for the registry. It is a
// pure function of the registry's contents; the registry is immutable, so
// callers may compute this once and reuse it.
func Project(reg *registry.Registry) []Item {
	items := make([]Item, 0, len(Pages)+len(reg.Books())+len(reg.Compendiums())+len(reg.Thoughts()))
	items = append(items, Pages...)

	for i, book := range reg.Books() {
		items = append(items, Item{
			ID:          fmt.Sprintf("book-%d", i),
			Title:       book.Title,
			Description: book.Thoughts,
			Type:        TypeBook,
			// Books have no individual route; every book points at the
			// collection page.
			URL:      "/books",
			Keywords: []string{"book", "reading", "recommendation"},
		})
	}

	for _, c := range reg.Compendiums() {
		items = append(items, Item{
			ID:          "compendium-" + c.Slug,
			Title:       c.Title,
			Description: c.Description,
			Type:        TypeCompendium,
			URL:         "/compendiums/" + c.Slug,
			Keywords:    []string{"compendium", "guide", "reference", strings.ReplaceAll(c.Slug, "-", " ")},
		})
	}

	for _, th := range reg.Thoughts() {
		items = append(items, Item{
			ID:          "thought-" + th.Slug,
			Title:       th.Title,
			Description: th.Abstract,
			Type:        TypeThought,
			URL:         "/thoughts/" + th.Slug,
			Keywords:    []string{"blog", "thought", "opinion", strings.ReplaceAll(th.Slug, "-", " ")},
		})
	}

	return items
}
