package cmd

import (
	"strings"
	"testing"
)

func TestSearch(t *testing.T) {
	t.Run("matches by title", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("search", "oauth")
		env.contains(out, "OAuth Deep Dive")
		env.contains(out, "/compendiums/oauth2")
	})

	t.Run("matches static pages", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("search", "reading")
		env.contains(out, "Books")
		env.contains(out, "/books")
	})

	t.Run("mid-word match", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("search", "auth")
		env.contains(out, "OAuth Deep Dive")
	})

	t.Run("no matches", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("search", "zzzzzz")
		env.contains(out, "No results.")
	})

	t.Run("multi-word query joined", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("search", "deep", "dive")
		env.contains(out, "OAuth Deep Dive")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("search", "oauth", "-o", "json")
		env.contains(out, `"query":"oauth"`)
		env.contains(out, `"compendium-oauth2"`)
	})
}

func TestSearch_Full(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("search", "--full", "vim")
	env.contains(out, `Found 1 results for "vim":`)
	env.contains(out, "# Why Vim (thought)")
	env.contains(out, "URL: /thoughts/vim")
	env.contains(out, "Modal editing sticks")
	if !strings.Contains(out, "---") {
		t.Error("full report missing result separator")
	}
}
