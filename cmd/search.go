// search.go implements the "website search" command.
//
// Design: mirrors what the RPC search tool does so results can be checked
// from the terminal. The default output is a match listing; --full fetches
// article bodies and prints the same report the search_content tool returns.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsjfunke/website/internal/format"
	"github.com/matsjfunke/website/internal/log"
	"github.com/matsjfunke/website/internal/registry"
	"github.com/matsjfunke/website/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search site content",
	Long:  `Search pages, books, compendiums, and thoughts by title, description, and keywords.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runSearch(c *cobra.Command, args []string) error {
	full, _ := c.Flags().GetBool("full")
	query := strings.Join(args, " ")

	reg := registry.Load(cfg)
	matches := search.Search(search.Project(reg), query)

	log.Event("cli:search", "search").
		Query(query).
		Detail("count", len(matches)).
		Write(nil)

	if JSON() {
		return PrintJSON(map[string]any{"query": query, "results": matches})
	}

	if full {
		results := search.Resolve(c.Context(), reg, matches)
		fmt.Fprintln(Out(), search.Report(query, results))
		return nil
	}
	return format.SearchResults(Out(), matches)
}

func init() {
	searchCmd.Flags().Bool("full", false, "Include full article content in results")
	rootCmd.AddCommand(searchCmd)
}
