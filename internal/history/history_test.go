package history

import (
	"bytes"
	"testing"
	"time"

	"github.com/AliSoftware/blogtool/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	database := db.NewSQLite(":memory:")
	if err := database.InitDB(); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return NewStore(database)
}

func TestRecordAndList(t *testing.T) {
	store := setupTestStore(t)

	first := Entry{
		Title:       "Hello World",
		DraftName:   "hello-world.md",
		PostName:    "2024-01-05-hello-world.md",
		Markdown:    []byte("---\ntitle: Hello World\n---\n\nbody\n"),
		PublishedAt: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
	}
	second := Entry{
		Title:       "Second Post",
		DraftName:   "second-post.md",
		PostName:    "2024-02-01-second-post.md",
		Markdown:    []byte("---\ntitle: Second Post\n---\n\nmore\n"),
		PublishedAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}

	if err := store.Record(first); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	// Newest first.
	if entries[0].PostName != "2024-02-01-second-post.md" {
		t.Errorf("Expected newest entry first, got %q", entries[0].PostName)
	}

	got := entries[1]
	if got.ID == "" {
		t.Error("Expected a generated ID")
	}
	if got.Slug != "hello-world" {
		t.Errorf("Expected derived slug 'hello-world', got %q", got.Slug)
	}
	if got.Title != "Hello World" {
		t.Errorf("Unexpected title %q", got.Title)
	}
	if !bytes.Equal(got.Markdown, first.Markdown) {
		t.Error("Snapshot did not round-trip through compression")
	}
}

func TestListEmpty(t *testing.T) {
	store := setupTestStore(t)

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}
