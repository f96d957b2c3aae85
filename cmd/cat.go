// cat.go implements the "website cat" command for reading an article.
//
// Design: behaves like Unix cat over content slugs. Terminal output gets
// glamour markdown rendering; pipe/redirect gets raw markdown. Thoughts are
// tried first, then compendiums, so bare slugs work without stating the kind.

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matsjfunke/website/internal/content"
	"github.com/matsjfunke/website/internal/log"
	"github.com/matsjfunke/website/internal/registry"
)

var catCmd = &cobra.Command{
	Use:   "cat <slug>",
	Short: "Read an article",
	Long:  `Output an article's markdown body to stdout, without its front-matter.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

func runCat(c *cobra.Command, args []string) error {
	raw, _ := c.Flags().GetBool("raw")
	slug := args[0]

	reg := registry.Load(cfg)

	body, err := reg.ThoughtBody(slug)
	var nf *content.NotFoundError
	if errors.As(err, &nf) {
		body, err = reg.CompendiumBody(slug)
	}

	log.Event("cli:cat", "read").Slug(slug).Write(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("cat %q: %w", slug, err))
	}

	if JSON() {
		return PrintJSON(map[string]string{"slug": slug, "content": body})
	}

	// Render with glamour if TTY and not --raw
	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, renderErr := glamour.Render(body, "dark")
		if renderErr == nil {
			fmt.Fprint(Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(Out(), body)
	return nil
}

func init() {
	catCmd.Flags().Bool("raw", false, "Output raw markdown without rendering")
	rootCmd.AddCommand(catCmd)
}
