package repository

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/AliSoftware/blogtool/internal/model"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	label string
	docs  map[string]model.Document
}

func NewMemoryRepository(label string) *MemoryRepository {
	return &MemoryRepository{
		label: label,
		docs:  make(map[string]model.Document),
	}
}

func (r *MemoryRepository) Path(name string) string {
	return filepath.Join(r.label, name)
}

func (r *MemoryRepository) List() ([]model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]model.Document, 0, len(r.docs))
	for _, doc := range r.docs {
		docs = append(docs, doc)
	}

	slices.SortStableFunc(docs, func(a, b model.Document) int {
		if c := -a.ModifiedDate.Compare(b.ModifiedDate); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return docs, nil
}

func (r *MemoryRepository) Read(name string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, r.Path(name))
	}
	return doc.Markdown, nil
}

func (r *MemoryRepository) Write(name string, content []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[name]; ok {
		return fmt.Errorf("%w: %s", ErrExists, r.Path(name))
	}
	r.docs[name] = model.NewDocument(name, content, time.Now())
	return nil
}

func (r *MemoryRepository) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, r.Path(name))
	}
	delete(r.docs, name)
	return nil
}

func (r *MemoryRepository) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.docs[name]
	return ok
}
