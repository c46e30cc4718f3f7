package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/content"
	"github.com/AliSoftware/blogtool/internal/launcher"
	"github.com/AliSoftware/blogtool/internal/repository"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a new post or draft",
	}
	cmd.AddCommand(newNewPostCmd())
	cmd.AddCommand(newNewDraftCmd())
	return cmd
}

func newScaffolder() (*content.Scaffolder, repository.Repository, repository.Repository) {
	drafts := draftsRepo()
	posts := postsRepo()
	return &content.Scaffolder{Drafts: drafts, Posts: posts}, drafts, posts
}

func newNewPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <title>",
		Short: "Create a new dated post and open it in your editor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			scaffolder, _, posts := newScaffolder()
			name, err := scaffolder.CreatePost(title)
			if err != nil {
				return scaffoldError(cmd, err)
			}

			fmt.Println(successStyle.Render("Created " + posts.Path(name)))
			openEditor(posts.Path(name))
			return nil
		},
	}
}

func newNewDraftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft <title>",
		Short: "Create a new undated draft",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			scaffolder, drafts, _ := newScaffolder()
			name, err := scaffolder.CreateDraft(title)
			if err != nil {
				return scaffoldError(cmd, err)
			}

			fmt.Println(successStyle.Render("Created " + drafts.Path(name)))
			if config.AppConfig.Editor.OpenDrafts {
				openEditor(drafts.Path(name))
			}
			return nil
		},
	}
}

func scaffoldError(cmd *cobra.Command, err error) error {
	if errors.Is(err, content.ErrTitleRequired) {
		// Operator mistake, not a failure: show the usage alongside it.
		cmd.Usage()
	}
	return err
}

// openEditor is best-effort: a missing or failing editor never fails the
// scaffold that already happened.
func openEditor(path string) {
	if err := launcher.OpenEditor(launcher.ExecRunner{}, config.AppConfig.Editor.Command, path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Could not open editor")
	}
}
