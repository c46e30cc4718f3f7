// Package repository abstracts the draft and post collections as explicit
// document stores, so the commands never reach for ambient paths directly.
package repository

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/AliSoftware/blogtool/internal/model"
)

var (
	ErrNotFound = errors.New("document not found")
	ErrExists   = errors.New("document already exists")
)

var repoLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	repoLogger = l
}

type Repository interface {
	// List returns every Markdown document in the collection, newest first.
	List() ([]model.Document, error)

	// Read returns the raw bytes of the named document.
	Read(name string) ([]byte, error)

	// Write creates the named document. It fails with ErrExists if a
	// document of that name is already present; scaffolding never
	// silently overwrites.
	Write(name string, content []byte) error

	Remove(name string) error
	Exists(name string) bool

	// Path returns the operator-facing location of the named document,
	// used in messages and when launching an editor.
	Path(name string) string
}

// Move transfers a document between collections. When both sides are
// filesystem-backed this is a single atomic rename; otherwise it degrades to
// read, exclusive write, remove.
func Move(src, dst Repository, name, newName string) error {
	if !src.Exists(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, src.Path(name))
	}
	if dst.Exists(newName) {
		return fmt.Errorf("%w: %s", ErrExists, dst.Path(newName))
	}

	srcFS, srcOK := src.(*FSRepository)
	dstFS, dstOK := dst.(*FSRepository)
	if srcOK && dstOK {
		return srcFS.renameInto(dstFS, name, newName)
	}

	content, err := src.Read(name)
	if err != nil {
		return err
	}
	if err := dst.Write(newName, content); err != nil {
		return err
	}
	return src.Remove(name)
}
