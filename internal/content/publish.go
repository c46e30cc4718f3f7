package content

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/model"
	"github.com/AliSoftware/blogtool/internal/repository"
)

var ErrNoSelection = errors.New("no draft selected")

var (
	menuIndexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	menuTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
)

// Publisher promotes drafts into the posts collection.
type Publisher struct {
	Drafts repository.Repository
	Posts  repository.Repository

	// DraftsDir is the operator-facing drafts location, stripped from
	// arguments like `_drafts/hello-world.md`.
	DraftsDir string

	Now func() time.Time
}

func (p *Publisher) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// NormalizeDraftName resolves the operator's spelling of a draft reference.
// `hello-world`, `hello-world.md` and `_drafts/hello-world.md` all resolve to
// `hello-world.md`.
func (p *Publisher) NormalizeDraftName(arg string) string {
	name := filepath.ToSlash(strings.TrimSpace(arg))

	if p.DraftsDir != "" {
		prefix := filepath.ToSlash(p.DraftsDir) + "/"
		name = strings.TrimPrefix(name, prefix)
	}

	if name != "" && !strings.HasSuffix(name, config.MarkdownExt) {
		name += config.MarkdownExt
	}
	return name
}

// Publish moves the named draft into the posts collection, prefixing today's
// date. The move is a single atomic rename; content is untouched.
func (p *Publisher) Publish(arg string) (string, error) {
	name := p.NormalizeDraftName(arg)
	if name == config.MarkdownExt || name == "" {
		return "", fmt.Errorf("%w: empty draft name", repository.ErrNotFound)
	}

	postName := model.PostName(name, p.now())
	if err := repository.Move(p.Drafts, p.Posts, name, postName); err != nil {
		return "", err
	}
	return postName, nil
}

// Choose maps a line of operator input to an index into a candidate list of
// the given length. The bool result is false when the input does not resolve
// to a valid selection and the operator should be re-prompted.
func Choose(numCandidates int, input string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	if n < 1 || n > numCandidates {
		return 0, false
	}
	return n - 1, true
}

// SelectDraft prints a numbered menu of the given drafts on out and reads
// selections from in until one is valid. Input running out before a valid
// selection yields ErrNoSelection.
func SelectDraft(in io.Reader, out io.Writer, docs []model.Document) (string, error) {
	if len(docs) == 0 {
		return "", fmt.Errorf("%w: no drafts to publish", ErrNoSelection)
	}

	for i, doc := range docs {
		fmt.Fprintf(out, "%s %s %s\n",
			menuIndexStyle.Render(fmt.Sprintf("%2d.", i+1)),
			doc.Name,
			menuTitleStyle.Render("("+DisplayTitle(doc)+")"),
		)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptStyle.Render(fmt.Sprintf("Draft to publish [1-%d]: ", len(docs))))
		if !scanner.Scan() {
			break
		}

		if idx, ok := Choose(len(docs), scanner.Text()); ok {
			return docs[idx].Name, nil
		}
		fmt.Fprintln(out, "Invalid selection.")
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", ErrNoSelection
}
