package search_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsjfunke/website/internal/config"
	"github.com/matsjfunke/website/internal/content"
	"github.com/matsjfunke/website/internal/registry"
	"github.com/matsjfunke/website/internal/search"
)

func testItems() []search.Item {
	return []search.Item{
		{ID: "a", Title: "OAuth 2.0 Authorization Flow", Description: "Understanding the OAuth 2.0 authorization flow", Type: search.TypeCompendium, URL: "/compendiums/oauth2"},
		{ID: "b", Title: "Build", Description: "My favorite book", Type: search.TypeBook, URL: "/books", Keywords: []string{"book", "reading"}},
		{ID: "c", Title: "Advance Notice", Description: "something else", Type: search.TypeThought, URL: "/thoughts/advance-notice"},
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	items := testItems()
	assert.Empty(t, search.Search(items, ""))
	assert.Empty(t, search.Search(items, "   "))
	assert.Empty(t, search.Search(items, "\t\n"))
}

func TestSearch_MatchesTitleDescriptionKeywords(t *testing.T) {
	items := testItems()

	byTitle := search.Search(items, "OAUTH")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "a", byTitle[0].ID)

	byDescription := search.Search(items, "favorite")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "b", byDescription[0].ID)

	byKeyword := search.Search(items, "reading")
	require.Len(t, byKeyword, 1)
	assert.Equal(t, "b", byKeyword[0].ID)
}

func TestSearch_SubstringMidWord(t *testing.T) {
	// Substring matching is intentional: "van" matches "Advance".
	matches := search.Search(testItems(), "van")
	require.Len(t, matches, 1)
	assert.Equal(t, "c", matches[0].ID)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, search.Search(testItems(), "zzzzz"))
}

func TestSearch_OrderPreservingAndDeterministic(t *testing.T) {
	items := []search.Item{
		{ID: "1", Title: "common alpha"},
		{ID: "2", Title: "unrelated"},
		{ID: "3", Title: "common beta"},
		{ID: "4", Title: "common gamma"},
	}

	first := search.Search(items, "common")
	second := search.Search(items, "common")

	require.Len(t, first, 3)
	assert.Equal(t, "1", first[0].ID)
	assert.Equal(t, "3", first[1].ID)
	assert.Equal(t, "4", first[2].ID)
	assert.Equal(t, first, second)
}

func TestSearch_Soundness(t *testing.T) {
	// Every returned item actually contains the query somewhere.
	items := testItems()
	for _, q := range []string{"o", "book", "flow", "notice"} {
		for _, m := range search.Search(items, q) {
			assert.True(t, contains(m, q), "item %s returned for %q", m.ID, q)
		}
	}
}

func contains(m search.Item, q string) bool {
	q = strings.ToLower(q)
	for _, s := range append([]string{m.Title, m.Description}, m.Keywords...) {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func registryFor(t *testing.T, compendiums, thoughts []content.Metadata) *registry.Registry {
	t.Helper()
	return registry.New(config.Default(), compendiums, thoughts)
}

func TestProject_CountsAndUniqueIDs(t *testing.T) {
	reg := registryFor(t,
		[]content.Metadata{
			{Title: "A", Description: "d", Date: "2024-01-01", Author: "m", Slug: "a"},
			{Title: "B", Description: "d", Date: "2024-01-02", Author: "m", Slug: "b"},
		},
		[]content.Metadata{
			{Title: "T", Abstract: "abs", Date: "2024-01-03", Author: "m", Slug: "t"},
		},
	)

	items := search.Project(reg)
	want := len(search.Pages) + len(reg.Books()) + len(reg.Compendiums()) + len(reg.Thoughts())
	assert.Len(t, items, want)

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestProject_RoundTripURLs(t *testing.T) {
	reg := registryFor(t,
		[]content.Metadata{{Title: "C", Description: "d", Date: "2024-01-01", Author: "m", Slug: "my-guide"}},
		[]content.Metadata{{Title: "T", Abstract: "a", Date: "2024-01-01", Author: "m", Slug: "my-thought"}},
	)

	items := search.Project(reg)

	var comp, thought *search.Item
	for i := range items {
		switch items[i].ID {
		case "compendium-my-guide":
			comp = &items[i]
		case "thought-my-thought":
			thought = &items[i]
		}
	}

	require.NotNil(t, comp)
	assert.Equal(t, "/compendiums/my-guide", comp.URL)
	assert.Contains(t, comp.Keywords, "my guide")

	require.NotNil(t, thought)
	assert.Equal(t, "/thoughts/my-thought", thought.URL)
	assert.Equal(t, "a", thought.Description)
}

func TestProject_ConcatenationOrder(t *testing.T) {
	reg := registryFor(t,
		[]content.Metadata{{Title: "C", Description: "d", Date: "2024-01-01", Author: "m", Slug: "c"}},
		[]content.Metadata{{Title: "T", Abstract: "a", Date: "2024-01-01", Author: "m", Slug: "t"}},
	)

	items := search.Project(reg)

	require.Equal(t, "home", items[0].ID)
	assert.Equal(t, search.TypePage, items[3].Type)
	assert.Equal(t, "book-0", items[4].ID)
	assert.Equal(t, search.TypeCompendium, items[4+len(reg.Books())].Type)
	assert.Equal(t, search.TypeThought, items[len(items)-1].Type)
}

func TestProject_BooksShareCollectionURL(t *testing.T) {
	reg := registryFor(t, nil, nil)

	for _, item := range search.Project(reg) {
		if item.Type == search.TypeBook {
			assert.Equal(t, "/books", item.URL)
		}
	}
}

func TestSearchScenario_OAuthCompendium(t *testing.T) {
	reg := registryFor(t,
		[]content.Metadata{{
			Title:       "OAuth 2.0 Authorization Flow",
			Description: "Understanding the OAuth 2.0 authorization flow...",
			Date:        "2024-01-01",
			Author:      "matsjfunke",
			Slug:        "oauth2",
		}},
		nil,
	)

	matches := search.Search(search.Project(reg), "oauth")
	require.Len(t, matches, 1)
	assert.Equal(t, search.TypeCompendium, matches[0].Type)
	assert.Equal(t, "/compendiums/oauth2", matches[0].URL)
}

func TestResolve_FullBodiesInMatchOrder(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Content.Compendiums = filepath.Join(dir, "compendiums")
	cfg.Content.Thoughts = filepath.Join(dir, "thoughts")
	require.NoError(t, os.MkdirAll(cfg.Content.Compendiums, 0o755))
	require.NoError(t, os.MkdirAll(cfg.Content.Thoughts, 0o755))

	article := "---\ntitle: Guide\n---\nFull compendium body.\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Content.Compendiums, "guide.mdx"), []byte(article), 0o644))

	reg := registry.New(cfg,
		[]content.Metadata{{Title: "Guide", Description: "summary", Date: "2024-01-01", Author: "m", Slug: "guide"}},
		[]content.Metadata{{Title: "Gone", Abstract: "only the abstract", Date: "2024-01-01", Author: "m", Slug: "gone"}},
	)

	matches := []search.Item{
		{ID: "thought-gone", Title: "Gone", Description: "only the abstract", Type: search.TypeThought, URL: "/thoughts/gone"},
		{ID: "compendium-guide", Title: "Guide", Description: "summary", Type: search.TypeCompendium, URL: "/compendiums/guide"},
		{ID: "book-0", Title: "Steve Jobs", Description: "short", Type: search.TypeBook, URL: "/books"},
	}

	results := search.Resolve(context.Background(), reg, matches)
	require.Len(t, results, 3)

	// Order equals match order, whatever each fetch did.
	assert.Equal(t, "Gone", results[0].Title)
	assert.Equal(t, "Guide", results[1].Title)
	assert.Equal(t, "Steve Jobs", results[2].Title)

	// Missing file falls back to the summary description.
	assert.Equal(t, "only the abstract", results[0].Content)
	assert.Equal(t, "Full compendium body.\n", results[1].Content)
	assert.Contains(t, results[2].Content, "**Steve Jobs**")
}

func TestReport_Format(t *testing.T) {
	text := search.Report("go", []search.FullResult{
		{Title: "A", Type: search.TypeCompendium, URL: "/compendiums/a", Content: "body"},
	})

	assert.Contains(t, text, `Found 1 results for "go":`)
	assert.Contains(t, text, "# A (compendium)\nURL: /compendiums/a\n\nbody\n\n---\n")
}
