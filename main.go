// Command blogtool is the authoring companion for a Jekyll-style blog:
// it scaffolds posts and drafts, promotes drafts into posts, previews the
// site, regenerates icon assets, and syncs published posts to a bucket.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/db"
	"github.com/AliSoftware/blogtool/internal/history"
	"github.com/AliSoftware/blogtool/internal/icons"
	"github.com/AliSoftware/blogtool/internal/logger"
	"github.com/AliSoftware/blogtool/internal/preview"
	"github.com/AliSoftware/blogtool/internal/remote"
	"github.com/AliSoftware/blogtool/internal/render"
	"github.com/AliSoftware/blogtool/internal/repository"
)

var log zerolog.Logger

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// A malformed .env is worth knowing about; a missing one is not.
		os.Stderr.WriteString("Error loading .env file\n")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "blogtool",
		Short:         "Authoring companion for a Jekyll-style blog",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Bootstrap logger so config loading itself can log.
			config.SetLogger(logger.New("warn"))

			if err := config.LoadConfig(configPath); err != nil {
				return err
			}

			log = logger.New(config.AppConfig.Logging.Level)
			config.SetLogger(log)
			repository.SetLogger(log)
			render.SetLogger(log)
			preview.SetLogger(log)
			icons.SetLogger(log)
			db.SetLogger(log)
			history.SetLogger(log)
			remote.SetLogger(log)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFileName, "config file path")

	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newPublishCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newIconsCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newSyncCmd())

	return cmd
}

func draftsRepo() *repository.FSRepository {
	return repository.NewFSRepository(config.AppConfig.Content.DraftsDir)
}

func postsRepo() *repository.FSRepository {
	return repository.NewFSRepository(config.AppConfig.Content.PostsDir)
}
