// generate.go implements the "website generate" command.
//
// Design: generation is the only write path for the content tables. The
// serving commands never extract on their own beyond the missing-table
// fallback, so regenerating and restarting is how content changes reach
// the site.

package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matsjfunke/website/internal/generate"
	"github.com/matsjfunke/website/internal/log"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content tables from markdown",
	Long:  `Extract front-matter from the content directories and write the JSON tables consumed by the site, search, and RPC surfaces.`,
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func runGenerate(c *cobra.Command, _ []string) error {
	dryRun, _ := c.Flags().GetBool("dry-run")

	opts := generate.Options{
		DryRun: dryRun,
		Colour: term.IsTerminal(int(os.Stdout.Fd())),
	}

	w := Out()
	if JSON() {
		w = io.Discard
	}

	result, err := generate.Run(w, cfg, opts)

	b := log.Event("cli:generate", "generate")
	for _, t := range result.Tables {
		b.Detail(string(t.Kind)+"s", t.Count)
	}
	b.Write(err)

	if err != nil {
		return PrintJSONError(err)
	}
	return PrintJSON(result)
}

func init() {
	generateCmd.Flags().Bool("dry-run", false, "Report changes without writing tables")
	rootCmd.AddCommand(generateCmd)
}
