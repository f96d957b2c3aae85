// Package mcp implements the Model Context Protocol server over stdio,
// exposing the site's content and search to LLM clients such as Claude
// Desktop. It serves the same tool and resources as the HTTP endpoint in
// internal/rpc, just over the transport MCP clients actually speak.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/matsjfunke/website/internal/log"
	"github.com/matsjfunke/website/internal/registry"
	"github.com/matsjfunke/website/internal/search"
)

// Name and Version are advertised to clients for capability negotiation.
const (
	Name    = "matsjfunke-website-mcp"
	Version = "1.0.0"
)

// Serve starts the MCP server over stdio and blocks until the client
// disconnects. stdout is reserved for MCP JSON-RPC messages, so all logging
// goes to stderr.
func Serve(reg *registry.Registry) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{reg: reg, items: search.Project(reg)}

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("website MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the content
// registry and its searchable projection.
type handlers struct {
	reg   *registry.Registry
	items []search.Item
}

// registerResources adds the three collection resources. Individual
// articles are intentionally not resources - the search tool returns full
// content, which is the access path clients should use.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcp.NewResource(
			"compendiums://all",
			"All Compendiums",
			mcp.WithResourceDescription("List of all available compendiums on the website"),
			mcp.WithMIMEType("application/json"),
		),
		h.readTable,
	)
	s.AddResource(
		mcp.NewResource(
			"thoughts://all",
			"All Thoughts",
			mcp.WithResourceDescription("List of all available thoughts and blog posts"),
			mcp.WithMIMEType("application/json"),
		),
		h.readTable,
	)
	s.AddResource(
		mcp.NewResource(
			"books://all",
			"All Books",
			mcp.WithResourceDescription("List of all book recommendations with personal thoughts"),
			mcp.WithMIMEType("application/json"),
		),
		h.readTable,
	)
}

// registerTools exposes search as an MCP tool for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("search_content",
			mcp.WithDescription("Search through all website content including compendiums, thoughts, books, and pages"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query to find relevant content")),
		),
		h.searchContent,
	)
}

// readTable handles reads of the collection resources.
func (h *handlers) readTable(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI

	var table any
	switch uri {
	case "compendiums://all":
		table = h.reg.Compendiums()
	case "thoughts://all":
		table = h.reg.Thoughts()
	case "books://all":
		table = h.reg.Books()
	default:
		return nil, fmt.Errorf("resource not found: %s", uri)
	}

	text, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return nil, err
	}

	log.Event("mcp:resources/read", "read").Slug(uri).Write(nil)

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(text),
		},
	}, nil
}

// searchContent handles search_content tool calls.
func (h *handlers) searchContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required and must be a string"), nil //nolint:nilerr
	}

	matches := search.Search(h.items, query)
	results := search.Resolve(ctx, h.reg, matches)

	log.Event("mcp:search_content", "search").Query(query).Detail("count", len(matches)).Write(nil)

	return mcp.NewToolResultText(search.Report(query, results)), nil
}
