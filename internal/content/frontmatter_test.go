package content

import (
	"strings"
	"testing"
	"time"

	"github.com/AliSoftware/blogtool/internal/model"
)

func TestRenderFrontMatter(t *testing.T) {
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	out, err := RenderFrontMatter(model.NewFrontMatter("Hello World", now))
	if err != nil {
		t.Fatalf("RenderFrontMatter: %v", err)
	}

	s := string(out)
	if !strings.HasPrefix(s, "---\n") {
		t.Errorf("Expected leading delimiter, got %q", s)
	}
	for _, want := range []string{
		"layout: post\n",
		"title: Hello World\n",
		"date: 2024-01-05 10:00:00 +0000\n",
		"categories: []\n",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, s)
		}
	}
	if !strings.HasSuffix(s, "---\n\n") {
		t.Errorf("Expected closing delimiter and blank separator line, got %q", s)
	}
}

func TestParseFrontMatter(t *testing.T) {
	t.Run("Round-trip", func(t *testing.T) {
		now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
		raw, err := RenderFrontMatter(model.NewFrontMatter("Hello World", now))
		if err != nil {
			t.Fatal(err)
		}

		fm, body, err := ParseFrontMatter(raw)
		if err != nil {
			t.Fatalf("ParseFrontMatter: %v", err)
		}
		if fm.Title != "Hello World" {
			t.Errorf("Expected title 'Hello World', got %q", fm.Title)
		}
		if fm.Layout != "post" {
			t.Errorf("Expected layout 'post', got %q", fm.Layout)
		}
		if !strings.HasPrefix(fm.Date, "2024-01-05") {
			t.Errorf("Expected date starting with 2024-01-05, got %q", fm.Date)
		}
		if strings.TrimSpace(string(body)) != "" {
			t.Errorf("Expected empty body, got %q", body)
		}
	})

	t.Run("No front matter", func(t *testing.T) {
		fm, body, err := ParseFrontMatter([]byte("# Just Content\n"))
		if err != nil {
			t.Fatalf("ParseFrontMatter: %v", err)
		}
		if fm.Title != "" {
			t.Errorf("Expected empty title, got %q", fm.Title)
		}
		if !strings.Contains(string(body), "Just Content") {
			t.Errorf("Expected body to pass through, got %q", body)
		}
	})
}

func TestDisplayTitle(t *testing.T) {
	t.Run("Front matter title wins", func(t *testing.T) {
		doc := model.NewDocument("hello-world.md",
			[]byte("---\ntitle: Hello World\n---\n\nbody\n"), time.Now())
		if got := DisplayTitle(doc); got != "Hello World" {
			t.Errorf("DisplayTitle = %q, want 'Hello World'", got)
		}
	})

	t.Run("Filename fallback", func(t *testing.T) {
		doc := model.NewDocument("untitled.md", []byte("just text\n"), time.Now())
		if got := DisplayTitle(doc); got != "untitled.md" {
			t.Errorf("DisplayTitle = %q, want 'untitled.md'", got)
		}
	})
}
