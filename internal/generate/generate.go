// Package generate extracts front-matter from the content directories and
// writes the JSON tables the site and search surfaces are built from.
//
// Design: generation is idempotent and change-aware. Each table is
// fingerprinted before writing; an unchanged table is skipped so repeated
// runs (pre-commit hooks, CI) do not churn mtimes. Changes are reported as
// a diff against the previous table.
package generate

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"

	"github.com/matsjfunke/website/internal/config"
	"github.com/matsjfunke/website/internal/content"
	"github.com/matsjfunke/website/internal/diff"
)

// Options configures a generate run.
type Options struct {
	DryRun bool // compute and report, write nothing
	Colour bool // colourise diffs
}

// Table reports the outcome for one content kind.
type Table struct {
	Kind    content.Kind `json:"kind"`
	Path    string       `json:"path"`
	Count   int          `json:"count"`
	Changed bool         `json:"changed"`
	Written bool         `json:"written"`
}

// Result holds the outcome of a generate run.
type Result struct {
	Tables []Table `json:"tables"`
}

// Run extracts both content kinds and writes their tables, reporting
// progress to w.
func Run(w io.Writer, cfg *config.Config, opts Options) (Result, error) {
	var res Result

	kinds := []struct {
		kind content.Kind
		dir  string
		path string
	}{
		{content.KindCompendium, cfg.Content.Compendiums, cfg.Data.Compendiums},
		{content.KindThought, cfg.Content.Thoughts, cfg.Data.Thoughts},
	}

	for _, k := range kinds {
		table, err := runKind(w, k.kind, k.dir, k.path, opts)
		if err != nil {
			return res, fmt.Errorf("generate %ss: %w", k.kind, err)
		}
		res.Tables = append(res.Tables, table)
	}

	return res, nil
}

func runKind(w io.Writer, kind content.Kind, dir, path string, opts Options) (Table, error) {
	metas, err := content.Extract(dir, kind)
	if err != nil {
		return Table{}, err
	}

	data, err := json.MarshalIndent(metas, "", "  ")
	if err != nil {
		return Table{}, fmt.Errorf("marshal table: %w", err)
	}
	data = append(data, '\n')

	table := Table{Kind: kind, Path: path, Count: len(metas)}

	old, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Table{}, fmt.Errorf("read previous table: %w", err)
	}

	if fingerprint(old) == fingerprint(data) {
		fmt.Fprintf(w, "%ss: %d entries, unchanged\n", kind, len(metas))
		return table, nil
	}
	table.Changed = true

	fmt.Fprintf(w, "%ss: %d entries\n", kind, len(metas))
	d := diff.Compute(string(old), string(data), path+" (old)", path+" (new)")
	fmt.Fprint(w, d.Format(opts.Colour))

	if opts.DryRun {
		fmt.Fprintf(w, "dry run, not writing %s\n", path)
		return table, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Table{}, fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Table{}, fmt.Errorf("write table: %w", err)
	}
	table.Written = true

	return table, nil
}

// fingerprint returns a short content hash for change detection.
func fingerprint(data []byte) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// only fails with a bad key, and we pass none
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
