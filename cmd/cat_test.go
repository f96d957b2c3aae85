package cmd

import (
	"strings"
	"testing"
)

func TestCat(t *testing.T) {
	t.Run("thought body", func(t *testing.T) {
		env := newTestEnv(t)

		// Piped output is never rendered, so this is the raw body
		out := env.run("cat", "vim")
		env.contains(out, "Modal editing sticks")
		if strings.Contains(out, "abstract:") {
			t.Error("cat output contains front-matter")
		}
	})

	t.Run("compendium body by bare slug", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("cat", "oauth2")
		env.contains(out, "# OAuth Deep Dive")
	})

	t.Run("unknown slug fails", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("cat", "nope")
		if err == nil {
			t.Fatalf("cat nope succeeded: %q", out)
		}
		env.contains(out, "not found")
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("secret.mdx", "top secret\n")

		out, err := env.runErr("cat", "../secret")
		if err == nil {
			t.Fatalf("cat ../secret succeeded: %q", out)
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("cat", "vim", "-o", "json")
		env.contains(out, `"slug":"vim"`)
		env.contains(out, `"content"`)
	})
}
