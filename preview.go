package main

import (
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/launcher"
	"github.com/AliSoftware/blogtool/internal/preview"
)

func newPreviewCmd() *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the site locally and open it in the browser",
		Long: `Start the site generator's serve mode (jekyll by default) and open the
browser once the server answers. With --builtin, skip the external generator
and serve rendered drafts and posts directly, with live reload on save.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := config.AppConfig.Preview
			addr := net.JoinHostPort(cfg.Host, cfg.Port)
			url := "http://" + addr + "/"

			openBrowser := func() error { return nil }
			if cfg.OpenBrowser {
				openBrowser = func() error {
					return launcher.OpenBrowser(launcher.ExecRunner{}, url)
				}
			}

			if builtin {
				server := preview.NewBuiltin(
					draftsRepo(), postsRepo(), addr,
					config.AppConfig.Site.Name, cfg.SyntaxTheme,
				)
				go func() {
					health := preview.HTTPHealthCheck(url)
					interval := time.Duration(cfg.PollInterval) * time.Millisecond
					timeout := time.Duration(cfg.ReadyTimeout) * time.Second
					if err := preview.WaitReady(ctx, health, interval, timeout); err != nil {
						return
					}
					if err := openBrowser(); err != nil {
						log.Warn().Err(err).Msg("Could not open browser")
					}
				}()
				return server.Run(ctx)
			}

			external := &preview.External{
				Command:      cfg.Command,
				URL:          url,
				PollInterval: time.Duration(cfg.PollInterval) * time.Millisecond,
				ReadyTimeout: time.Duration(cfg.ReadyTimeout) * time.Second,
				OnReady:      openBrowser,
			}
			return external.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, "serve rendered markdown directly instead of running the external generator")

	return cmd
}
