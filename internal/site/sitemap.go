package site

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"time"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemap lists every page. Landing pages carry higher priority than
// individual articles.
func (s *Server) sitemap(w http.ResponseWriter, _ *http.Request) {
	base := s.cfg.Site.BaseURL
	today := time.Now().Format("2006-01-02")

	entry := func(path, freq, priority string) sitemapURL {
		return sitemapURL{
			Loc:        base + path,
			LastMod:    today,
			ChangeFreq: freq,
			Priority:   priority,
		}
	}

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs,
		entry("/", "weekly", "1"),
		entry("/books", "monthly", "0.8"),
		entry("/compendiums", "weekly", "0.9"),
		entry("/thoughts", "weekly", "0.9"),
	)
	for _, m := range s.reg.Compendiums() {
		set.URLs = append(set.URLs, entry("/compendiums/"+m.Slug, "weekly", "0.7"))
	}
	for _, m := range s.reg.Thoughts() {
		set.URLs = append(set.URLs, entry("/thoughts/"+m.Slug, "weekly", "0.7"))
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		slog.Error("encoding sitemap", "error", err)
	}
}
