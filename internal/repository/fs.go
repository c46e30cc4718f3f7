package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/model"
)

type FSRepository struct { // implements Repository
	dir string
}

func NewFSRepository(dir string) *FSRepository {
	return &FSRepository{dir: dir}
}

func (r *FSRepository) Dir() string {
	return r.dir
}

func (r *FSRepository) Path(name string) string {
	return filepath.Join(r.dir, name)
}

func (r *FSRepository) List() ([]model.Document, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", r.dir, err)
	}

	var docs []model.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), config.MarkdownExt) {
			continue
		}

		mdContent, err := os.ReadFile(r.Path(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", r.Path(entry.Name()), err)
		}

		fileInfo, err := entry.Info()
		if err != nil {
			return nil, err
		}

		docs = append(docs, model.NewDocument(entry.Name(), mdContent, fileInfo.ModTime()))
	}

	slices.SortStableFunc(docs, func(a, b model.Document) int {
		if c := -a.ModifiedDate.Compare(b.ModifiedDate); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return docs, nil
}

func (r *FSRepository) Read(name string) ([]byte, error) {
	content, err := os.ReadFile(r.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.Path(name))
		}
		return nil, err
	}
	return content, nil
}

func (r *FSRepository) Write(name string, content []byte) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", r.dir, err)
	}

	f, err := os.OpenFile(r.Path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, r.Path(name))
		}
		return err
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *FSRepository) Remove(name string) error {
	if err := os.Remove(r.Path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, r.Path(name))
		}
		return err
	}
	return nil
}

func (r *FSRepository) Exists(name string) bool {
	_, err := os.Stat(r.Path(name))
	return err == nil
}

func (r *FSRepository) renameInto(dst *FSRepository, name, newName string) error {
	if err := os.MkdirAll(dst.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dst.dir, err)
	}
	return os.Rename(r.Path(name), dst.Path(newName))
}

// Watch reports Markdown changes in the collection directory until the
// context is cancelled. Used by the built-in preview server for live reload.
func (r *FSRepository) Watch(ctx context.Context, onChange func(name string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(r.dir); err != nil {
		return fmt.Errorf("watching %s: %w", r.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, config.MarkdownExt) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				repoLogger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Content changed")
				onChange(filepath.Base(event.Name))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			repoLogger.Error().Err(err).Msg("Watcher error")
		}
	}
}
