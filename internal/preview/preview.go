// Package preview runs the site preview: either the external static-site
// generator in watch mode, or a built-in rendering server.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var previewLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	previewLogger = l
}

var ErrNotReady = errors.New("server did not become ready before the timeout")

// HealthCheck reports whether the preview server is reachable.
type HealthCheck func(ctx context.Context) error

// HTTPHealthCheck probes url; any HTTP response counts as ready.
func HTTPHealthCheck(url string) HealthCheck {
	client := &http.Client{Timeout: 2 * time.Second}
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		return nil
	}
}

// WaitReady polls health every interval until it succeeds, the timeout
// elapses, or the context is cancelled. There is no push notification from
// the external server, so polling is the only readiness signal available.
func WaitReady(ctx context.Context, health HealthCheck, interval, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := health(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return ErrNotReady
		case <-ticker.C:
		}
	}
}

// External supervises the external site generator subprocess.
type External struct {
	// Command is the full serve command line, e.g.
	// "bundle exec jekyll serve --watch --drafts".
	Command string

	URL          string
	Health       HealthCheck
	PollInterval time.Duration
	ReadyTimeout time.Duration

	// OnReady fires once the server answers; used to open the browser.
	// Best-effort: a nil hook or a hook error changes nothing.
	OnReady func() error
}

// Run blocks until the subprocess exits or the context is cancelled.
func (e *External) Run(ctx context.Context) error {
	parts := strings.Fields(e.Command)
	if len(parts) == 0 {
		return errors.New("empty preview command")
	}

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %q: %w", parts[0], err)
	}
	previewLogger.Info().Str("command", e.Command).Int("pid", cmd.Process.Pid).Msg("Preview server started")

	go e.openWhenReady(ctx)

	err := cmd.Wait()
	if ctx.Err() != nil {
		// Operator interrupt, not a server failure.
		return nil
	}
	return err
}

func (e *External) openWhenReady(ctx context.Context) {
	health := e.Health
	if health == nil {
		health = HTTPHealthCheck(e.URL)
	}

	if err := WaitReady(ctx, health, e.PollInterval, e.ReadyTimeout); err != nil {
		previewLogger.Warn().Err(err).Str("url", e.URL).Msg("Preview server never became reachable")
		return
	}

	previewLogger.Info().Str("url", e.URL).Msg("Preview server is ready")
	if e.OnReady != nil {
		if err := e.OnReady(); err != nil {
			previewLogger.Warn().Err(err).Msg("Could not open browser")
		}
	}
}
