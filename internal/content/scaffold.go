package content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AliSoftware/blogtool/internal/model"
	"github.com/AliSoftware/blogtool/internal/repository"
	"github.com/AliSoftware/blogtool/internal/util"
)

var ErrTitleRequired = errors.New("a non-empty title is required")

// Scaffolder creates new drafts and posts with a front matter header and an
// empty body. Now is injectable so filenames are deterministic in tests.
type Scaffolder struct {
	Drafts repository.Repository
	Posts  repository.Repository

	Now func() time.Time
}

func (s *Scaffolder) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreatePost scaffolds `<date>-<slug>.md` in the posts collection and returns
// the new filename.
func (s *Scaffolder) CreatePost(title string) (string, error) {
	name, content, err := s.scaffold(title)
	if err != nil {
		return "", err
	}

	name = model.PostName(name, s.now())
	if err := s.Posts.Write(name, content); err != nil {
		return "", fmt.Errorf("creating post: %w", err)
	}
	return name, nil
}

// CreateDraft scaffolds `<slug>.md` in the drafts collection and returns the
// new filename. Drafts carry no date prefix; that is what marks them as
// unpublished.
func (s *Scaffolder) CreateDraft(title string) (string, error) {
	name, content, err := s.scaffold(title)
	if err != nil {
		return "", err
	}

	if err := s.Drafts.Write(name, content); err != nil {
		return "", fmt.Errorf("creating draft: %w", err)
	}
	return name, nil
}

func (s *Scaffolder) scaffold(title string) (string, []byte, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", nil, ErrTitleRequired
	}

	slug := util.Slugify(title)
	if slug == "" {
		return "", nil, fmt.Errorf("%w: %q yields an empty slug", ErrTitleRequired, title)
	}

	content, err := RenderFrontMatter(model.NewFrontMatter(title, s.now()))
	if err != nil {
		return "", nil, err
	}

	return model.DraftName(slug), content, nil
}
