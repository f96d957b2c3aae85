// Package rpc implements the site's JSON-RPC endpoint at POST /api/mcp.
//
// The endpoint speaks a minimal subset of the Model Context Protocol wire
// format to external tool-calling clients: ping, initialize, resource
// listing/reading, and a single search_content tool. It is stateless; every
// request is dispatched on its method field and answered from the registry.
//
// Design: the handler is written against the wire contract directly rather
// than through an MCP SDK because the contract pins behaviours the SDK
// servers own - a missing tool argument must surface as a protocol-level
// -32602, an unknown tool as -32601, and any internal failure as an HTTP 500
// carrying {code:-32603, id:null}. The same tools are also served over stdio
// via an SDK in internal/mcp for LLM clients that speak full MCP.
package rpc

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/matsjfunke/website/internal/log"
	"github.com/matsjfunke/website/internal/registry"
	"github.com/matsjfunke/website/internal/search"
)

// ServerName and ServerVersion are advertised in the initialize result.
const (
	ServerName      = "matsjfunke-website-mcp"
	ServerVersion   = "1.0.0"
	ProtocolVersion = "2024-11-05"
)

// JSON-RPC error codes used by the endpoint.
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternal       = -32603
)

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      any             `json:"id"`
}

type response struct {
	JSONRPC string    `json:"jsonrpc"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
	ID      any       `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// resource is one entry of the resources/list result.
type resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType"`
}

// Handler serves the JSON-RPC endpoint. It holds the immutable registry and
// the searchable projection, computed once at construction.
type Handler struct {
	reg   *registry.Registry
	items []search.Item
}

// NewHandler builds the endpoint handler for a loaded registry.
func NewHandler(reg *registry.Registry) *Handler {
	return &Handler{
		reg:   reg,
		items: search.Project(reg),
	}
}

// ServeHTTP dispatches a single JSON-RPC request. Any panic during handling
// is caught here and answered with a generic internal error so no partial
// response is ever emitted.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("rpc request panicked", "panic", rec)
			writeInternalError(w)
		}
	}()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("rpc request unreadable", "error", err)
		writeInternalError(w)
		return
	}

	switch req.Method {
	case "ping":
		writeResult(w, req.ID, struct{}{})
	case "initialize":
		h.initialize(w, req)
	case "resources/list":
		h.resourcesList(w, req)
	case "resources/read":
		h.resourcesRead(w, req)
	case "tools/list":
		h.toolsList(w, req)
	case "tools/call":
		h.toolsCall(w, r, req)
	default:
		writeError(w, req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

func (h *Handler) initialize(w http.ResponseWriter, req request) {
	writeResult(w, req.ID, map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"resources": struct{}{},
			"tools":     struct{}{},
		},
		"serverInfo": map[string]string{
			"name":    ServerName,
			"version": ServerVersion,
		},
	})
}

func (h *Handler) resourcesList(w http.ResponseWriter, req request) {
	writeResult(w, req.ID, map[string]any{
		"resources": []resource{
			{
				URI:         "compendiums://all",
				Name:        "All Compendiums",
				Description: "List of all available compendiums on the website",
				MIMEType:    "application/json",
			},
			{
				URI:         "thoughts://all",
				Name:        "All Thoughts",
				Description: "List of all available thoughts and blog posts",
				MIMEType:    "application/json",
			},
			{
				URI:         "books://all",
				Name:        "All Books",
				Description: "List of all book recommendations with personal thoughts",
				MIMEType:    "application/json",
			},
		},
	})
}

func (h *Handler) resourcesRead(w http.ResponseWriter, req request) {
	var params struct {
		URI string `json:"uri"`
	}
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			writeError(w, req.ID, codeInvalidParams, "Invalid params")
			return
		}
	}

	var table any
	switch params.URI {
	case "compendiums://all":
		table = h.reg.Compendiums()
	case "thoughts://all":
		table = h.reg.Thoughts()
	case "books://all":
		table = h.reg.Books()
	default:
		log.Event("rpc:resources/read", "read").Slug(params.URI).Write(fmt.Errorf("unknown uri"))
		writeError(w, req.ID, codeInvalidParams, fmt.Sprintf("Resource not found: %s", params.URI))
		return
	}

	text, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		writeInternalError(w)
		return
	}

	log.Event("rpc:resources/read", "read").Slug(params.URI).Write(nil)
	writeResult(w, req.ID, map[string]any{
		"contents": []map[string]string{
			{
				"uri":      params.URI,
				"text":     string(text),
				"mimeType": "application/json",
			},
		},
	})
}

func (h *Handler) toolsList(w http.ResponseWriter, req request) {
	writeResult(w, req.ID, map[string]any{
		"tools": []map[string]any{
			{
				"name":        "search_content",
				"description": "Search through all website content including compendiums, thoughts, books, and pages",
				"inputSchema": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"query": map[string]any{
							"type":        "string",
							"description": "Search query to find relevant content",
						},
					},
					"required": []string{"query"},
				},
			},
		},
	})
}

func (h *Handler) toolsCall(w http.ResponseWriter, r *http.Request, req request) {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			writeError(w, req.ID, codeInvalidParams, "Invalid params")
			return
		}
	}

	if params.Name != "search_content" {
		writeError(w, req.ID, codeMethodNotFound, fmt.Sprintf("Unknown tool: %s", params.Name))
		return
	}

	query, ok := params.Arguments["query"].(string)
	if !ok || query == "" {
		writeError(w, req.ID, codeInvalidParams, "Invalid params: query is required and must be a string")
		return
	}

	matches := search.Search(h.items, query)
	results := search.Resolve(r.Context(), h.reg, matches)

	log.Event("rpc:tools/call", "search").Query(query).Detail("count", len(matches)).Write(nil)

	writeResult(w, req.ID, map[string]any{
		"content": []map[string]string{
			{
				"type": "text",
				"text": search.Report(query, results),
			},
		},
	})
}

func writeResult(w http.ResponseWriter, id, result any) {
	writeJSON(w, http.StatusOK, response{JSONRPC: "2.0", Result: result, ID: id})
}

func writeError(w http.ResponseWriter, id any, code int, message string) {
	writeJSON(w, http.StatusOK, response{
		JSONRPC: "2.0",
		Error:   &rpcError{Code: code, Message: message},
		ID:      id,
	})
}

// writeInternalError answers an uncaught failure: HTTP 500, code -32603,
// id null.
func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, response{
		JSONRPC: "2.0",
		Error:   &rpcError{Code: codeInternal, Message: "Internal server error"},
		ID:      nil,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("rpc response write failed", "error", err)
	}
}
