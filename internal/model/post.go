// Package model defines core data structures and types for the blog tooling.
package model

import (
	"time"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/util"
)

type PostID string

// FrontMatter is the Jekyll-style metadata block written at the top of every
// scaffolded document and consumed by the external site generator.
type FrontMatter struct {
	Layout     string   `yaml:"layout"`
	Title      string   `yaml:"title"`
	Date       string   `yaml:"date"`
	Categories []string `yaml:"categories"`
}

func NewFrontMatter(title string, now time.Time) FrontMatter {
	return FrontMatter{
		Layout:     config.DefaultLayout,
		Title:      title,
		Date:       now.Format(config.FrontMatterDateFormat),
		Categories: []string{},
	}
}

// Document is a Markdown file in one of the content collections. Drafts and
// posts share the same shape; only their filename convention differs.
type Document struct {
	ID PostID

	// Name is the filename within its collection, including the .md suffix.
	Name  string
	Title string

	Markdown      []byte
	MDContentHash string

	ModifiedDate time.Time
}

func NewDocument(name string, markdown []byte, modified time.Time) Document {
	return Document{
		ID:            PostID(util.ContentHashString(name)),
		Name:          name,
		Markdown:      markdown,
		MDContentHash: util.ContentHash(markdown),
		ModifiedDate:  modified,
	}
}

// PostName returns the filename a draft receives when published on the given
// day: the draft's own name with a date prefix.
func PostName(draftName string, day time.Time) string {
	return day.Format(config.PostDateFormat) + "-" + draftName
}

// DraftName returns the filename for a new draft with the given slug.
func DraftName(slug string) string {
	return slug + config.MarkdownExt
}
