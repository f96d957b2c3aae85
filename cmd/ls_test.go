package cmd

import (
	"strings"
	"testing"
)

func TestLs(t *testing.T) {
	t.Run("lists both kinds", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls")
		env.contains(out, "oauth2")
		env.contains(out, "OAuth Deep Dive")
		env.contains(out, "vim")
		env.contains(out, "Why Vim")
	})

	t.Run("kind filter", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "thoughts")
		env.contains(out, "vim")
		env.notContains(out, "oauth2")
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("ls", "essays")
		if err == nil {
			t.Fatalf("ls essays succeeded: %q", out)
		}
		env.contains(out, "unknown kind")
	})

	t.Run("long format", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "-l")
		env.contains(out, "SLUG")
		env.contains(out, "2025-03-01")
		env.contains(out, "matsjfunke")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "-o", "json")
		env.contains(out, `"slug"`)
		env.contains(out, "oauth2")
	})
}

func TestLs_Books(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("ls", "--books")
	env.contains(out, "Steve Jobs")
	if strings.Contains(out, "oauth2") {
		t.Error("book listing contains article slugs")
	}
}

func TestLs_EmptyContent(t *testing.T) {
	env := newTestEnv(t)
	// Point the config at directories that do not exist
	env.write("website.yaml", "content:\n  compendiums: missing/compendiums\n  thoughts: missing/thoughts\n")

	// Empty content is not an error; the listing just has no entries.
	out := env.run("ls")
	env.notContains(out, "oauth2")
	env.notContains(out, "vim")
}
