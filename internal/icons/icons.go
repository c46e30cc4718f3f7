// Package icons regenerates the site's icon assets from a single source image.
package icons

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog"
)

var iconsLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	iconsLogger = l
}

// Spec is one (name prefix, pixel size) entry of the icon matrix.
type Spec struct {
	Prefix string
	Size   int
}

// Table is the fixed icon matrix: the apple-touch-icon family plus favicons.
var Table = []Spec{
	{"apple-touch-icon", 57},
	{"apple-touch-icon", 60},
	{"apple-touch-icon", 72},
	{"apple-touch-icon", 76},
	{"apple-touch-icon", 114},
	{"apple-touch-icon", 120},
	{"apple-touch-icon", 144},
	{"apple-touch-icon", 152},
	{"apple-touch-icon", 180},
	{"favicon", 16},
	{"favicon", 32},
	{"favicon", 96},
	{"favicon", 192},
}

func (s Spec) FileName() string {
	return fmt.Sprintf("%s-%dx%d.png", s.Prefix, s.Size, s.Size)
}

// Resizer produces one resized copy of a source image.
type Resizer interface {
	Resize(ctx context.Context, source, dest string, width, height int) error
}

// ExecResizer shells out to an ImageMagick-style resize utility.
type ExecResizer struct {
	// Command is the utility name, e.g. "magick" or "convert".
	Command string
}

func (r ExecResizer) Resize(ctx context.Context, source, dest string, width, height int) error {
	cmd := exec.CommandContext(ctx, r.Command,
		source, "-resize", fmt.Sprintf("%dx%d", width, height), dest)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s: %w (%s)", r.Command, dest, err, out)
	}
	return nil
}

// Generate runs the resizer once per table entry, writing each output file
// into outDir. Entries are independent: a failing size is logged and
// collected, and the remaining entries still run.
func Generate(ctx context.Context, resizer Resizer, table []Spec, source, outDir string) error {
	var errs []error
	for _, spec := range table {
		dest := filepath.Join(outDir, spec.FileName())
		if err := resizer.Resize(ctx, source, dest, spec.Size, spec.Size); err != nil {
			iconsLogger.Error().Err(err).Str("icon", spec.FileName()).Msg("Icon generation failed")
			errs = append(errs, err)
			continue
		}
		iconsLogger.Info().Str("icon", spec.FileName()).Msg("Icon generated")
	}
	return errors.Join(errs...)
}
