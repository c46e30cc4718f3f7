// Package content implements the authoring operations: scaffolding new posts
// and drafts, and promoting drafts into the posts collection.
package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/AliSoftware/blogtool/internal/model"
)

const frontMatterDelimiter = "---\n"

// RenderFrontMatter serializes the metadata block the way the external site
// generator expects it: YAML between `---` fences, then a blank line. The
// keys are laid out explicitly so the date stays an unquoted scalar; yaml.v3
// would quote anything timestamp-shaped.
func RenderFrontMatter(fm model.FrontMatter) ([]byte, error) {
	title, err := yamlScalar(fm.Title)
	if err != nil {
		return nil, fmt.Errorf("marshalling title: %w", err)
	}

	categories := "[]"
	if len(fm.Categories) > 0 {
		raw, err := yaml.Marshal(fm.Categories)
		if err != nil {
			return nil, fmt.Errorf("marshalling categories: %w", err)
		}
		categories = "\n" + strings.TrimSuffix(string(raw), "\n")
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	fmt.Fprintf(&buf, "layout: %s\n", fm.Layout)
	fmt.Fprintf(&buf, "title: %s\n", title)
	fmt.Fprintf(&buf, "date: %s\n", fm.Date)
	fmt.Fprintf(&buf, "categories: %s\n", categories)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// yamlScalar renders a single string value, quoted and escaped only when YAML
// requires it.
func yamlScalar(s string) (string, error) {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(raw), "\n"), nil
}

// ParseFrontMatter extracts the metadata block and the Markdown body from the
// provided source bytes.
func ParseFrontMatter(source []byte) (model.FrontMatter, []byte, error) {
	var fm model.FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return model.FrontMatter{}, nil, fmt.Errorf("parsing front matter: %w", err)
	}

	return fm, body, nil
}

// DisplayTitle returns the document's front matter title when one is present,
// falling back to the filename.
func DisplayTitle(doc model.Document) string {
	fm, _, err := ParseFrontMatter(doc.Markdown)
	if err == nil && fm.Title != "" {
		return fm.Title
	}
	return doc.Name
}
