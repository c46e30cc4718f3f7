// Package history records every publish in a local SQLite log, keeping a
// compressed snapshot of the markdown as it was at publish time.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/db"
	"github.com/AliSoftware/blogtool/internal/util/compression"
)

var historyLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	historyLogger = l
}

type Entry struct {
	ID        string
	Slug      string
	Title     string
	DraftName string
	PostName  string

	Markdown []byte

	PublishedAt time.Time
}

type Store struct {
	db         db.DB
	compressor compression.Compressor
}

func NewStore(database db.DB) *Store {
	return &Store{
		db:         database,
		compressor: compression.ZstdCompressor{},
	}
}

// Record logs one publish. The markdown snapshot is compressed before it is
// stored.
func (s *Store) Record(entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.PublishedAt.IsZero() {
		entry.PublishedAt = time.Now().UTC()
	}
	if entry.Slug == "" {
		entry.Slug = strings.TrimSuffix(entry.DraftName, config.MarkdownExt)
	}

	compressed, err := s.compressor.Compress(entry.Markdown)
	if err != nil {
		return fmt.Errorf("compressing snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO publishes (id, slug, title, draft_name, post_name, content, published_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Slug, entry.Title, entry.DraftName, entry.PostName, compressed, entry.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("recording publish: %w", err)
	}

	historyLogger.Debug().Str("post", entry.PostName).Msg("Publish recorded")
	return nil
}

// List returns every recorded publish, newest first. Snapshots are
// decompressed on the way out.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, slug, title, draft_name, post_name, content, published_at FROM publishes ORDER BY published_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying publishes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var compressed []byte

		if err := rows.Scan(&entry.ID, &entry.Slug, &entry.Title, &entry.DraftName,
			&entry.PostName, &compressed, &entry.PublishedAt); err != nil {
			return nil, fmt.Errorf("scanning publish: %w", err)
		}

		entry.Markdown, err = s.compressor.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("decompressing snapshot: %w", err)
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
