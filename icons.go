package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/icons"
)

func newIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons <source-image>",
		Short: "Regenerate favicon and apple-touch-icon PNGs",
		Long: `Resize a single source image into the full favicon and apple-touch-icon
set. Every entry is attempted even when some fail; the command reports
all failures at the end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.AppConfig.Icons
			resizer := icons.ExecResizer{Command: cfg.Command}

			if err := icons.Generate(cmd.Context(), resizer, icons.Table, args[0], cfg.OutputDir); err != nil {
				return err
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("Generated %d icons in %s", len(icons.Table), cfg.OutputDir)))
			return nil
		},
	}
}
