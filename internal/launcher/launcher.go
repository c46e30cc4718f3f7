// Package launcher wraps the best-effort external programs the tool fires off:
// the operator's editor and the default web browser. Failures here never abort
// the primary operation; callers log and move on.
package launcher

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
)

var ErrNoEditor = errors.New("no editor configured; set editor.command or $EDITOR")

// Runner abstracts subprocess startup so the failure policy is explicit at
// the call site and fakeable in tests.
type Runner interface {
	Start(name string, args ...string) error
}

type ExecRunner struct{}

func (ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Start()
}

// OpenEditor launches the operator's preferred editor on the given path.
// command, when non-empty, overrides $VISUAL and $EDITOR.
func OpenEditor(runner Runner, command, path string) error {
	editor := command
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return ErrNoEditor
	}
	return runner.Start(editor, path)
}

// OpenBrowser opens the default browser on the given URL.
func OpenBrowser(runner Runner, url string) error {
	switch runtime.GOOS {
	case "darwin":
		return runner.Start("open", url)
	case "windows":
		return runner.Start("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return runner.Start("xdg-open", url)
	}
}
