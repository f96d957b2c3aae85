// mcp.go implements the "website mcp" command: an MCP server over stdio
// exposing the content collections as resources and content search as a
// tool. The HTTP JSON-RPC endpoint under serve speaks the same protocol
// for web clients; this command is for local assistants spawning a
// subprocess.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matsjfunke/website/internal/mcp"
	"github.com/matsjfunke/website/internal/registry"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve content over MCP on stdio",
	Long:  `Start a Model Context Protocol server on stdin/stdout exposing the site's content as resources and content search as a tool.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.Serve(registry.Load(cfg))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
