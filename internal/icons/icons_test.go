package icons

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

type call struct {
	source string
	dest   string
	width  int
	height int
}

type fakeResizer struct {
	calls   []call
	failOn  string
	failErr error
}

func (f *fakeResizer) Resize(_ context.Context, source, dest string, width, height int) error {
	f.calls = append(f.calls, call{source, dest, width, height})
	if f.failOn != "" && filepath.Base(dest) == f.failOn {
		return f.failErr
	}
	return nil
}

func TestGenerate(t *testing.T) {
	t.Run("One invocation per table entry", func(t *testing.T) {
		table := []Spec{{"favicon", 16}, {"favicon", 32}}
		resizer := &fakeResizer{}

		if err := Generate(context.Background(), resizer, table, "logo.png", "out"); err != nil {
			t.Fatalf("Generate: %v", err)
		}

		if len(resizer.calls) != 2 {
			t.Fatalf("Expected 2 invocations, got %d", len(resizer.calls))
		}

		expected := []string{"favicon-16x16.png", "favicon-32x32.png"}
		for i, c := range resizer.calls {
			if c.source != "logo.png" {
				t.Errorf("Call %d: unexpected source %q", i, c.source)
			}
			if filepath.Base(c.dest) != expected[i] {
				t.Errorf("Call %d: expected dest %q, got %q", i, expected[i], c.dest)
			}
			if c.width != table[i].Size || c.height != table[i].Size {
				t.Errorf("Call %d: expected %dx%d, got %dx%d",
					i, table[i].Size, table[i].Size, c.width, c.height)
			}
		}
	})

	t.Run("A failing entry does not stop the rest", func(t *testing.T) {
		table := []Spec{{"favicon", 16}, {"favicon", 32}, {"favicon", 96}}
		boom := errors.New("resize failed")
		resizer := &fakeResizer{failOn: "favicon-32x32.png", failErr: boom}

		err := Generate(context.Background(), resizer, table, "logo.png", ".")
		if !errors.Is(err, boom) {
			t.Fatalf("Expected the entry failure to surface, got %v", err)
		}
		if len(resizer.calls) != 3 {
			t.Errorf("Expected all 3 entries to run, got %d", len(resizer.calls))
		}
	})

	t.Run("Full table covers both icon families", func(t *testing.T) {
		resizer := &fakeResizer{}
		if err := Generate(context.Background(), resizer, Table, "logo.png", "."); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(resizer.calls) != len(Table) {
			t.Fatalf("Expected %d invocations, got %d", len(Table), len(resizer.calls))
		}

		seen := make(map[string]bool)
		for _, c := range resizer.calls {
			seen[filepath.Base(c.dest)] = true
		}
		for _, spec := range Table {
			want := fmt.Sprintf("%s-%dx%d.png", spec.Prefix, spec.Size, spec.Size)
			if !seen[want] {
				t.Errorf("Missing output %q", want)
			}
		}
	})
}
