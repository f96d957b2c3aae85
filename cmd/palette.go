// palette.go implements the "website palette" command: the site's command
// palette in the terminal. Selecting an entry prints its absolute URL so
// the output can be piped to a browser opener.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsjfunke/website/internal/log"
	"github.com/matsjfunke/website/internal/palette"
	"github.com/matsjfunke/website/internal/registry"
	"github.com/matsjfunke/website/internal/search"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Interactive content search",
	Long:  `Open an interactive palette over the site's searchable content. Enter prints the selected entry's URL; escape exits without output.`,
	Args:  cobra.NoArgs,
	RunE:  runPalette,
}

func runPalette(_ *cobra.Command, _ []string) error {
	reg := registry.Load(cfg)

	item, err := palette.Run(search.Project(reg))

	b := log.Event("cli:palette", "search")
	if item != nil {
		b.Detail("selected", item.ID)
	}
	b.Write(err)

	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}

	fmt.Fprintln(Out(), cfg.Site.BaseURL+item.URL)
	return nil
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
