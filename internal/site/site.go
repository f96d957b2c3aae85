// Package site serves the rendered website: content pages, the sitemap,
// and the JSON-RPC endpoint. Article bodies are read on demand by slug and
// rendered with goldmark; everything else comes from the registry built at
// startup.
package site

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/matsjfunke/website/internal/config"
	"github.com/matsjfunke/website/internal/content"
	"github.com/matsjfunke/website/internal/registry"
	"github.com/matsjfunke/website/internal/rpc"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders and serves the website.
type Server struct {
	cfg  *config.Config
	reg  *registry.Registry
	tmpl *template.Template
	md   goldmark.Markdown
	rpc  http.Handler
}

// New builds the site server for a loaded registry.
func New(cfg *config.Config, reg *registry.Registry) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)

	return &Server{
		cfg:  cfg,
		reg:  reg,
		tmpl: tmpl,
		md:   md,
		rpc:  rpc.NewHandler(reg),
	}, nil
}

// Handler returns the site's route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.home)
	mux.HandleFunc("GET /compendiums", s.compendiums)
	mux.HandleFunc("GET /compendiums/{slug}", s.compendium)
	mux.HandleFunc("GET /thoughts", s.thoughts)
	mux.HandleFunc("GET /thoughts/{slug}", s.thought)
	mux.HandleFunc("GET /books", s.books)
	mux.HandleFunc("GET /sitemap.xml", s.sitemap)
	mux.Handle("/api/mcp", s.rpc)
	mux.HandleFunc("/", s.notFound)

	return mux
}

// page is the data every template receives.
type page struct {
	Site    config.Site
	Title   string
	Path    string
	Meta    content.Metadata
	Metas   []content.Metadata
	Books   []registry.Book
	Content template.HTML
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data page) {
	data.Site = s.cfg.Site

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("rendering page", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "home.html", page{Title: s.cfg.Site.Title})
}

func (s *Server) compendiums(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "compendiums.html", page{
		Title: "Compendiums",
		Metas: s.reg.Compendiums(),
	})
}

func (s *Server) thoughts(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "thoughts.html", page{
		Title: "Thoughts",
		Metas: s.reg.Thoughts(),
	})
}

func (s *Server) books(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "books.html", page{
		Title: "Books",
		Books: s.reg.Books(),
	})
}

func (s *Server) compendium(w http.ResponseWriter, r *http.Request) {
	s.article(w, r, content.KindCompendium)
}

func (s *Server) thought(w http.ResponseWriter, r *http.Request) {
	s.article(w, r, content.KindThought)
}

// article serves one rendered compendium or thought. An unknown slug gets
// the 404 page, not an error.
func (s *Server) article(w http.ResponseWriter, r *http.Request, kind content.Kind) {
	slug := r.PathValue("slug")

	var body string
	var err error
	if kind == content.KindCompendium {
		body, err = s.reg.CompendiumBody(slug)
	} else {
		body, err = s.reg.ThoughtBody(slug)
	}

	var nf *content.NotFoundError
	if errors.As(err, &nf) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		slog.Error("reading article", "kind", kind, "slug", slug, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var html bytes.Buffer
	if err := s.md.Convert([]byte(body), &html); err != nil {
		slog.Error("rendering markdown", "slug", slug, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	meta := s.findMeta(kind, slug)
	s.render(w, http.StatusOK, "article.html", page{
		Title:   meta.Title,
		Meta:    meta,
		Content: template.HTML(html.String()),
	})
}

// findMeta looks the slug up in the registry tables. Articles on disk but
// missing from the table (added since the last generate) still render,
// with defaults derived from the slug.
func (s *Server) findMeta(kind content.Kind, slug string) content.Metadata {
	metas := s.reg.Compendiums()
	if kind == content.KindThought {
		metas = s.reg.Thoughts()
	}
	for _, m := range metas {
		if m.Slug == slug {
			return m
		}
	}
	return content.Metadata{
		Title:  content.Titleize(slug),
		Author: s.cfg.Site.Author,
		Slug:   slug,
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "404.html", page{
		Title: "Not Found",
		Path:  r.URL.Path,
	})
}
