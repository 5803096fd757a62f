package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newEnrichCommand(ctx *commandContext) *cobra.Command {
	var sync bool

	cmd := &cobra.Command{
		Use:   "enrich <episode-id>",
		Short: "Transcribe an episode and regenerate its chapters and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			episodeID := args[0]
			out := cmd.OutOrStdout()

			if !sync {
				svc, err := ctx.services(cmd.Context())
				if err != nil {
					return err
				}
				if err := svc.catalog.ScheduleEnrichment(cmd.Context(), episodeID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Enrichment queued for episode %s\n", episodeID)
				return nil
			}

			enricher, err := ctx.enrichment(cmd.Context())
			if err != nil {
				return err
			}
			result, err := enricher.Enrich(cmd.Context(), episodeID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Episode %s enriched: %d chapters, transcript at %s\n",
				episodeID, len(result.Chapters), result.TranscriptKey)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sync, "sync", false, "Run the pipeline in this process instead of queueing it")

	return cmd
}

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var sync bool

	cmd := &cobra.Command{
		Use:   "publish <podcast-id>",
		Short: "Render and publish a new feed version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			podcastID := args[0]
			out := cmd.OutOrStdout()

			svc, err := ctx.services(cmd.Context())
			if err != nil {
				return err
			}

			if !sync {
				if err := svc.catalog.SchedulePublish(cmd.Context(), podcastID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Publish queued for podcast %s\n", podcastID)
				return nil
			}

			result, err := svc.feeds.Publish(cmd.Context(), podcastID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Published version %d: %s\n", result.Version, result.FeedURL)
			if result.SidecarErrors > 0 {
				fmt.Fprintf(out, "Chapter sidecars: %d written, %d failed\n", result.Sidecars, result.SidecarErrors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sync, "sync", false, "Publish in this process instead of queueing it")

	return cmd
}

func newSweepCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Queue enrichment for unenriched episodes and publishing for stale feeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.services(cmd.Context())
			if err != nil {
				return err
			}
			episodes, err := svc.sweeper.Sweep(cmd.Context())
			if err != nil {
				return err
			}
			feeds, err := svc.sweeper.SweepFeeds(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Episodes: %d candidates, %d queued, %d errors\n",
				episodes.Candidates, episodes.Enqueued, episodes.Errors)
			fmt.Fprintf(out, "Feeds: %d candidates, %d queued, %d errors\n",
				feeds.Candidates, feeds.Enqueued, feeds.Errors)
			return nil
		},
	}
}

func newFeedsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "feeds <podcast-id>",
		Short: "List the published feed versions of a podcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.services(cmd.Context())
			if err != nil {
				return err
			}
			feeds, err := svc.catalog.FeedVersions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(feeds) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No feed versions published")
				return nil
			}

			rows := make([][]string, 0, len(feeds))
			for _, f := range feeds {
				latest := ""
				if f.IsLatest {
					latest = "yes"
				}
				rows = append(rows, []string{
					strconv.Itoa(f.Version),
					f.PublishedAt.Local().Format("2006-01-02 15:04:05"),
					latest,
					f.FeedURL,
				})
			}
			table := renderTable(
				[]string{"Version", "Published", "Latest", "URL"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func newDeletePodcastCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-podcast <podcast-id>",
		Short: "Delete a podcast with all of its episodes and feed versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.services(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.catalog.DeletePodcast(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Podcast %s deleted\n", args[0])
			return nil
		},
	}
}

func newPodcastsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "podcasts",
		Short: "List podcasts",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.services(cmd.Context())
			if err != nil {
				return err
			}
			podcasts, err := svc.catalog.ListPodcasts(cmd.Context())
			if err != nil {
				return err
			}
			if len(podcasts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No podcasts")
				return nil
			}

			rows := make([][]string, 0, len(podcasts))
			for _, p := range podcasts {
				rows = append(rows, []string{p.ID, p.Title, p.Author, p.CreatedAt.Local().Format("2006-01-02")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Author", "Created"},
				rows,
				nil,
			))
			return nil
		},
	}
}
