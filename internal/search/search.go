// Package search projects every piece of site content into a uniform
// searchable shape and matches free-text queries against it.
//
// The matcher is deliberately the simplest correct one: case-insensitive
// substring containment over title, description and keywords, returning
// matches in input order. The corpus is a few dozen items, so there is no
// ranking, tokenisation or index - predictability matters more than cost.
package search

import "strings"

// Type tags a searchable item with its content category.
type Type string

const (
	TypePage       Type = "page"
	TypeBook       Type = "book"
	TypeCompendium Type = "compendium"
	TypeThought    Type = "thought"
)

// Label returns the display label for a type.
func (t Type) Label() string {
	switch t {
	case TypeBook:
		return "Book"
	case TypeCompendium:
		return "Compendium"
	case TypeThought:
		return "Thought"
	default:
		return "Page"
	}
}

// Item is the normalised projection of any content entity. IDs are unique
// across the whole collection: "compendium-<slug>", "thought-<slug>",
// "book-<index>", or a fixed literal for static pages.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        Type     `json:"type"`
	URL         string   `json:"url"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Search returns every item whose title, description or any keyword contains
// the lowercased, trimmed query as a substring, in input order. An empty or
// all-whitespace query yields no results - distinct from "return everything".
func Search(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []Item
	for _, item := range items {
		if matchItem(item, q) {
			matches = append(matches, item)
		}
	}
	return matches
}

func matchItem(item Item, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, kw := range item.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}
