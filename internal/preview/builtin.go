package preview

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AliSoftware/blogtool/internal/content"
	"github.com/AliSoftware/blogtool/internal/model"
	"github.com/AliSoftware/blogtool/internal/render"
	"github.com/AliSoftware/blogtool/internal/repository"
	"github.com/AliSoftware/blogtool/internal/sse"
)

//go:embed templates/*
var templates embed.FS

// Watchable is a repository that can report content changes. The filesystem
// repository satisfies it; the in-memory test double does not need to.
type Watchable interface {
	repository.Repository
	Watch(ctx context.Context, onChange func(name string)) error
}

// Builtin is a self-contained preview server rendering drafts and posts
// directly, with SSE-driven live reload. It renders for preview only and
// never writes files.
type Builtin struct {
	Drafts Watchable
	Posts  Watchable

	Addr        string
	SiteName    string
	SyntaxTheme string

	clients *sse.Clients
}

func NewBuiltin(drafts, posts Watchable, addr, siteName, syntaxTheme string) *Builtin {
	return &Builtin{
		Drafts:      drafts,
		Posts:       posts,
		Addr:        addr,
		SiteName:    siteName,
		SyntaxTheme: syntaxTheme,
		clients:     sse.NewClients(),
	}
}

func (b *Builtin) Run(ctx context.Context) error {
	onChange := func(name string) {
		previewLogger.Info().Str("doc", name).Msg("Content changed, notifying clients")
		b.clients.Broadcast(name, "reload")
	}
	go b.watch(ctx, b.Drafts, onChange)
	go b.watch(ctx, b.Posts, onChange)

	srv := &http.Server{
		Addr:    b.Addr,
		Handler: b.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	previewLogger.Info().Str("addr", b.Addr).Msg("Built-in preview server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (b *Builtin) watch(ctx context.Context, repo Watchable, onChange func(string)) {
	if err := repo.Watch(ctx, onChange); err != nil && !errors.Is(err, context.Canceled) {
		previewLogger.Error().Err(err).Msg("Watcher stopped")
	}
}

func (b *Builtin) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", b.serveIndex)
	mux.HandleFunc("/drafts/{name}", b.serveDoc(b.Drafts))
	mux.HandleFunc("/posts/{name}", b.serveDoc(b.Posts))
	mux.HandleFunc("/syntax.css", b.serveSyntaxCSS)
	mux.HandleFunc("/sse", b.serveEvents)
	return mux
}

type docEntry struct {
	Name  string
	Title string
}

func (b *Builtin) serveIndex(w http.ResponseWriter, r *http.Request) {
	drafts, err := b.Drafts.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	posts, err := b.Posts.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := struct {
		SiteName string
		Drafts   []docEntry
		Posts    []docEntry
	}{
		SiteName: b.SiteName,
		Drafts:   toEntries(drafts),
		Posts:    toEntries(posts),
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.Execute(w, data); err != nil {
		previewLogger.Error().Err(err).Msg("Rendering index failed")
	}
}

func toEntries(docs []model.Document) []docEntry {
	entries := make([]docEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, docEntry{Name: doc.Name, Title: content.DisplayTitle(doc)})
	}
	return entries
}

func (b *Builtin) serveDoc(repo Watchable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if name == "" {
			http.NotFound(w, r)
			return
		}

		raw, err := repo.Read(name)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		title := strings.TrimSuffix(name, ".md")
		body := raw
		if fm, parsed, err := content.ParseFrontMatter(raw); err == nil {
			body = parsed
			if fm.Title != "" {
				title = fm.Title
			}
		}

		doc := model.NewDocument(name, raw, time.Now())
		htmlContent := render.RenderMarkdownCached(body, doc.MDContentHash, b.SyntaxTheme)

		tmpl, err := template.ParseFS(templates, "templates/doc.html")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		data := struct {
			Name    string
			Title   string
			Content template.HTML
		}{
			Name:    name,
			Title:   title,
			Content: template.HTML(htmlContent),
		}

		w.Header().Set("Content-Type", "text/html")
		if err := tmpl.Execute(w, data); err != nil {
			previewLogger.Error().Err(err).Str("doc", name).Msg("Rendering document failed")
		}
	}
}

func (b *Builtin) serveSyntaxCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	w.Write([]byte(render.GenerateSyntaxCSS(b.SyntaxTheme)))
}

func (b *Builtin) serveEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: connected\ndata: SSE connection established\n\n")
	flusher.Flush()

	client := &sse.Client{
		ID:  uuid.New().String(),
		Msg: make(chan string, 1),
		Doc: r.URL.Query().Get("doc"),
	}
	b.clients.Add(client)
	previewLogger.Debug().Str("client", client.ID).Msg("SSE client connected")

	defer func() {
		b.clients.Delete(client)
		previewLogger.Debug().Str("client", client.ID).Msg("SSE client disconnected")
	}()

	notify := r.Context().Done()
	for {
		select {
		case msg := <-client.Msg:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		case <-notify:
			return
		}
	}
}
