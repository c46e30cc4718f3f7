package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/remote"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Upload published posts to the configured bucket",
		Long: `Push every file in the posts directory to the S3-compatible bucket named
in sync.bucket. Uploads carry a content hash as object metadata so
unchanged posts are skipped on later runs.

Credentials come from S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.AppConfig.Sync
			if cfg.Bucket == "" {
				return errors.New("no bucket configured; set sync.bucket")
			}

			accessKeyID := os.Getenv("S3_ACCESS_KEY_ID")
			accessKeySecret := os.Getenv("S3_SECRET_ACCESS_KEY")
			if accessKeyID == "" || accessKeySecret == "" {
				return errors.New("missing credentials; set S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY")
			}

			sync, err := remote.NewS3Sync(cmd.Context(),
				accessKeyID, accessKeySecret,
				cfg.Endpoint, cfg.Region, cfg.Bucket, cfg.Prefix)
			if err != nil {
				return err
			}

			uploaded, err := sync.Push(cmd.Context(), postsRepo())
			if err != nil {
				return err
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("Synced %d posts to %s", uploaded, cfg.Bucket)))
			return nil
		},
	}
}
