package demo

import (
	"strings"
	"testing"

	"github.com/blizzard-html/blizzard/pkg/render"
)

func TestSitePages(t *testing.T) {
	s := Site()
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for _, path := range []string{"/", "/elements", "/form"} {
		if _, ok := s.Page(path); !ok {
			t.Errorf("missing page %q", path)
		}
	}
}

func TestPagesRender(t *testing.T) {
	for _, page := range Site().Pages() {
		out := render.String(page.Render())
		if !strings.HasPrefix(out, "<!DOCTYPE html>") {
			t.Errorf("page %q missing doctype: %q", page.Path, out[:40])
		}
		if !strings.Contains(out, "</html>") {
			t.Errorf("page %q not a complete document", page.Path)
		}
	}
}
