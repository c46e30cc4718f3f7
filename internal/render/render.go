// Package render provides markdown rendering and syntax highlighting for the
// built-in preview server.
package render

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	md_html "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/rs/zerolog"

	"github.com/AliSoftware/blogtool/internal/cache"
)

var renderLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	renderLogger = l
}

func GetFormatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.TabWidth(4),
		chromahtml.WrapLongLines(true),
	)
}

func HighlightCode(code, language, highlightTheme string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	style := styles.Get(highlightTheme)
	err = GetFormatter().Format(&buf, style, iterator)
	if err != nil {
		return code
	}

	return html.UnescapeString(buf.String())
}

func RenderMarkdown(md []byte, highlightTheme string) []byte {
	opts := md_html.RendererOptions{
		Flags: md_html.CommonFlags | md_html.HrefTargetBlank | md_html.FootnoteReturnLinks,
		RenderNodeHook: func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
			if code, ok := node.(*ast.CodeBlock); ok && entering {
				var lang string
				if info := code.Info; info != nil {
					lang = string(info)
				}
				highlighted := HighlightCode(string(code.Literal), lang, highlightTheme)
				fmt.Fprintf(w, "<div class=\"highlight\">%s</div>", highlighted)
				return ast.GoToNext, true
			}

			return ast.GoToNext, false
		},
	}

	doc := parser.NewWithExtensions(
		parser.Tables | parser.FencedCode | parser.Autolink | parser.Strikethrough | parser.SpaceHeadings |
			parser.HeadingIDs | parser.BackslashLineBreak | parser.DefinitionLists | parser.MathJax |
			parser.AutoHeadingIDs | parser.Footnotes | parser.OrderedListStart | parser.Attributes,
	).Parse(markdown.NormalizeNewlines(md))

	return markdown.Render(doc, md_html.NewRenderer(opts))
}

// Mutex to protect the check-render-set operation in RenderMarkdownCached
var renderCacheMutex sync.Mutex

func RenderMarkdownCached(md []byte, contentHash, highlightTheme string) []byte {
	if contentHash == "" {
		renderLogger.Warn().Msg("Content hash is empty, skipping cache check")
		return RenderMarkdown(md, highlightTheme)
	}

	// First check cache without locking (fast path for cache hits)
	if cached, found := cache.GetRenderedMarkdown(contentHash, highlightTheme); found {
		return cached
	}

	renderCacheMutex.Lock()
	defer renderCacheMutex.Unlock()

	html := RenderMarkdown(md, highlightTheme)
	cache.SetRenderedMarkdown(contentHash, highlightTheme, html)

	return html
}

// GenerateSyntaxCSS emits the stylesheet for the chroma classes used by
// HighlightCode.
func GenerateSyntaxCSS(highlightTheme string) string {
	var buf strings.Builder
	style := styles.Get(highlightTheme)
	if style == nil {
		style = styles.Fallback
	}
	if err := GetFormatter().WriteCSS(&buf, style); err != nil {
		renderLogger.Error().Err(err).Str("theme", highlightTheme).Msg("Failed to generate syntax CSS")
	}
	return buf.String()
}
