// Package log provides best-effort audit logging for website operations.
// Entries are stored in ~/.website/log/website-log.db and record generate
// runs, searches, and RPC/MCP tool invocations.
//
// Use the fluent builder API to construct and write entries:
//
//	log.Event("rpc:tools/call", "search").
//		Query(q).
//		Detail("count", len(results)).
//		Write(err)
//
// The source parameter follows the format "{surface}:{operation}", e.g.
// "cli:search", "rpc:resources/read", "mcp:search_content".
package log

import (
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit log entry.
type Entry struct {
	Source string // e.g. "cli:generate", "rpc:tools/call"
	Action string // verb: read, search, generate, serve

	Query string // search query, if the operation is a search
	Slug  string // content slug, if the operation targets one article

	Start int64 // unix timestamp when Event() was called
	End   int64 // unix timestamp when Write() was called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs a log entry using a fluent API. Create with [Event],
// chain setters, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Query records the search query for this operation.
func (b *Builder) Query(q string) *Builder {
	b.entry.Query = q
	return b
}

// Slug records the content slug this operation targets.
func (b *Builder) Slug(s string) *Builder {
	b.entry.Slug = s
	return b
}

// Detail adds a key-value pair to the entry's detail map. Can be called
// multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the entry, deriving success/failure from err. This is the
// standard way to complete an entry after an operation:
//
//	metas, err := content.Extract(dir, kind)
//	log.Event("cli:generate", "generate").Detail("count", len(metas)).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Log writes an entry. Safe to call if the logger is not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them; logging is
// best-effort and must never break the operation being logged.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	l, err := open(dbPath())
	if err != nil {
		return err
	}
	global = l
	return nil
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
