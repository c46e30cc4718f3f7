package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/db"
	"github.com/AliSoftware/blogtool/internal/history"
)

var (
	historyDateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	historyTitleStyle = lipgloss.NewStyle().Bold(true)
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past publishes recorded in the local history store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.AppConfig.History
			if !cfg.Enabled {
				return errors.New("history is disabled; set history.enabled to true")
			}

			database := db.NewSQLite(cfg.Path)
			if err := database.InitDB(); err != nil {
				return fmt.Errorf("opening history store: %w", err)
			}
			defer database.Close()

			entries, err := history.NewStore(database).List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No publishes recorded yet.")
				return nil
			}

			for _, entry := range entries {
				fmt.Printf("%s  %s  %s\n",
					historyDateStyle.Render(entry.PublishedAt.Local().Format("2006-01-02 15:04")),
					historyTitleStyle.Render(entry.Title),
					entry.PostName,
				)
			}
			return nil
		},
	}
}
