package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AliSoftware/blogtool/internal/config"
	"github.com/AliSoftware/blogtool/internal/content"
	"github.com/AliSoftware/blogtool/internal/db"
	"github.com/AliSoftware/blogtool/internal/history"
	"github.com/AliSoftware/blogtool/internal/repository"
)

func newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish [draft]",
		Short: "Move a draft into the posts collection with today's date",
		Long: `Move a draft into the posts collection, prefixing today's date.

The draft may be named with or without the .md suffix and with or without
the drafts directory prefix. With no argument, a numbered menu of drafts
is offered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts := draftsRepo()
			posts := postsRepo()
			publisher := &content.Publisher{
				Drafts:    drafts,
				Posts:     posts,
				DraftsDir: config.AppConfig.Content.DraftsDir,
			}

			var arg string
			if len(args) == 1 {
				arg = args[0]
			} else {
				docs, err := drafts.List()
				if err != nil {
					return err
				}
				arg, err = content.SelectDraft(os.Stdin, os.Stdout, docs)
				if err != nil {
					return err
				}
			}

			draftName := publisher.NormalizeDraftName(arg)
			postName, err := publisher.Publish(draftName)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					fmt.Println(errorStyle.Render(err.Error()))
				}
				return err
			}

			fmt.Println(successStyle.Render("Published " + posts.Path(postName)))
			recordPublish(posts, draftName, postName)
			return nil
		},
	}
}

// recordPublish appends the publish to the local history log. The log is an
// audit convenience; its failure never rolls back or fails a publish that
// already happened.
func recordPublish(posts repository.Repository, draftArg, postName string) {
	if !config.AppConfig.History.Enabled {
		return
	}

	markdown, err := posts.Read(postName)
	if err != nil {
		log.Warn().Err(err).Msg("Could not read published post for history")
		return
	}

	title := postName
	if fm, _, err := content.ParseFrontMatter(markdown); err == nil && fm.Title != "" {
		title = fm.Title
	}

	database := db.NewSQLite(config.AppConfig.History.Path)
	if err := database.InitDB(); err != nil {
		log.Warn().Err(err).Msg("Could not open history database")
		return
	}
	defer database.Close()

	err = history.NewStore(database).Record(history.Entry{
		Title:     title,
		DraftName: draftArg,
		PostName:  postName,
		Markdown:  markdown,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Could not record publish history")
	}
}
