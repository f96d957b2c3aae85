// ls.go implements the "website ls" command for listing content.
//
// Design: mimics Unix ls over the content collections. The optional kind
// argument narrows the listing; -l shows dates and authors, and the books
// flag lists the reading recommendations instead.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsjfunke/website/internal/content"
	"github.com/matsjfunke/website/internal/format"
	"github.com/matsjfunke/website/internal/registry"
)

var lsCmd = &cobra.Command{
	Use:   "ls [compendiums|thoughts]",
	Short: "List content",
	Long:  `List compendiums and thoughts, newest first. With no argument both kinds are listed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func runLs(c *cobra.Command, args []string) error {
	long, _ := c.Flags().GetBool("long")
	books, _ := c.Flags().GetBool("books")

	reg := registry.Load(cfg)

	if books {
		if JSON() {
			return PrintJSON(reg.Books())
		}
		return format.Books(Out(), reg.Books())
	}

	var metas []content.Metadata
	kind := ""
	if len(args) > 0 {
		kind = args[0]
	}
	switch kind {
	case "":
		metas = append(metas, reg.Compendiums()...)
		metas = append(metas, reg.Thoughts()...)
	case "compendiums":
		metas = reg.Compendiums()
	case "thoughts":
		metas = reg.Thoughts()
	default:
		return PrintJSONError(fmt.Errorf("unknown kind %q: must be 'compendiums' or 'thoughts'", kind))
	}

	if JSON() {
		return PrintJSON(metas)
	}
	if long {
		return format.Long(Out(), metas)
	}
	return format.List(Out(), metas)
}

func init() {
	lsCmd.Flags().BoolP("long", "l", false, "Long format with date and author")
	lsCmd.Flags().Bool("books", false, "List books instead of articles")
	rootCmd.AddCommand(lsCmd)
}
