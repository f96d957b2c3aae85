package cmd

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	t.Run("writes tables", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("generate")
		env.contains(out, "compendiums: 1 entries")
		env.contains(out, "thoughts: 1 entries")

		if !env.exists("data/compendiums.json") {
			t.Fatal("data/compendiums.json not written")
		}
		table := env.readFile("data/compendiums.json")
		env.contains(table, `"slug": "oauth2"`)
		env.contains(table, `"title": "OAuth Deep Dive"`)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("generate")

		out := env.run("generate")
		env.contains(out, "unchanged")
		env.notContains(out, "+ ")
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("generate", "--dry-run")
		env.contains(out, "dry run")
		if env.exists("data/compendiums.json") {
			t.Fatal("dry run wrote data/compendiums.json")
		}
	})

	t.Run("shows diff on content change", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("generate")

		env.write("content/thoughts/go.mdx", "---\ntitle: \"On Go\"\ndate: \"2025-06-01\"\n---\n\nbody\n")
		out := env.run("generate")
		env.contains(out, "thoughts: 2 entries")
		env.contains(out, "On Go")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("generate", "-o", "json")
		env.contains(out, `"tables"`)
		env.contains(out, `"count":1`)
		if strings.Contains(out, "entries") {
			t.Errorf("JSON output contains human format: %q", out)
		}
	})
}

func TestGenerate_Defaults(t *testing.T) {
	env := newTestEnv(t)
	env.write("content/thoughts/bare.mdx", "no front matter at all\n")

	env.run("generate")
	table := env.readFile("data/thoughts.json")
	env.contains(table, `"title": "Bare"`)
	env.contains(table, `"author": "matsjfunke"`)
}
