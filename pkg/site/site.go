// Package site holds an ordered registry of pages built with the html
// package and knows how to write them out as a static tree of files.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/blizzard-html/blizzard/pkg/html"
	"github.com/blizzard-html/blizzard/pkg/render"
)

// Page is a single addressable page. Render is called once per build or
// per request; it must return a fresh tree and must not retain it.
type Page struct {
	// Path is the URL path the page is served under, e.g. "/" or "/about".
	Path string

	// Title is used for logging and listings; the page itself decides
	// what to put in its <title>.
	Title string

	// Render builds the page's document tree.
	Render func() *html.Node
}

// Site is an ordered page registry. Pages render in registration order
// during builds; lookup by path is used when serving.
type Site struct {
	pages  []Page
	byPath map[string]int
	logger *slog.Logger
}

// New creates an empty site.
func New() *Site {
	return &Site{
		byPath: make(map[string]int),
		logger: slog.Default().With("component", "site"),
	}
}

// Add registers a page. The path is normalized to a single leading
// slash. Registering a duplicate path or a page without a Render
// function is an error.
func (s *Site) Add(p Page) error {
	if p.Render == nil {
		return fmt.Errorf("site: page %q has no render function", p.Path)
	}
	p.Path = normalizePath(p.Path)
	if _, exists := s.byPath[p.Path]; exists {
		return fmt.Errorf("site: duplicate page path %q", p.Path)
	}
	s.byPath[p.Path] = len(s.pages)
	s.pages = append(s.pages, p)
	return nil
}

// MustAdd is like Add but panics on error. Intended for static page
// registration at startup.
func (s *Site) MustAdd(p Page) {
	if err := s.Add(p); err != nil {
		panic(err)
	}
}

// Page returns the page registered under the given path.
func (s *Site) Page(path string) (Page, bool) {
	i, ok := s.byPath[normalizePath(path)]
	if !ok {
		return Page{}, false
	}
	return s.pages[i], true
}

// Pages returns the registered pages in registration order.
func (s *Site) Pages() []Page {
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Len returns the number of registered pages.
func (s *Site) Len() int {
	return len(s.pages)
}

// Build renders every page and writes it beneath dir. The page at "/"
// becomes dir/index.html; every other path becomes
// dir/<path>/index.html.
func (s *Site) Build(dir string) error {
	for _, p := range s.pages {
		out := render.String(p.Render())
		file := OutputFile(dir, p.Path)

		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return fmt.Errorf("site: create %s: %w", filepath.Dir(file), err)
		}
		if err := os.WriteFile(file, []byte(out), 0o644); err != nil {
			return fmt.Errorf("site: write %s: %w", file, err)
		}

		s.logger.Info("page built", "path", p.Path, "file", file, "bytes", len(out))
	}
	return nil
}

// OutputFile returns the file a page path is written to during a build.
func OutputFile(dir, path string) string {
	trimmed := strings.Trim(normalizePath(path), "/")
	if trimmed == "" {
		return filepath.Join(dir, "index.html")
	}
	return filepath.Join(dir, filepath.FromSlash(trimmed), "index.html")
}

// normalizePath ensures a single leading slash and no trailing slash.
func normalizePath(path string) string {
	path = "/" + strings.Trim(path, "/")
	return path
}
