package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"podcaster/internal/scheduler"
	"podcaster/internal/worker"
)

func newWorkerCommand(ctx *commandContext) *cobra.Command {
	var noSweep bool

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Consume enrichment and publish tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			svc, err := ctx.services(runCtx)
			if err != nil {
				return err
			}
			enricher, err := ctx.enrichment(runCtx)
			if err != nil {
				return err
			}
			queue, err := ctx.taskQueue()
			if err != nil {
				return err
			}

			w := worker.New(enricher, svc.feeds, ctx.cfg.Pipeline.RunTimeout, ctx.logger)

			ctx.logger.Info("starting worker",
				"queue", ctx.cfg.RabbitMQ.QueueName,
				"prefetch", ctx.cfg.RabbitMQ.Prefetch,
				"sweep_interval", ctx.cfg.Sweep.Interval,
				"feed_sweep_interval", ctx.cfg.Sweep.FeedInterval,
			)

			g, gctx := errgroup.WithContext(runCtx)
			g.Go(func() error {
				return queue.Consume(gctx, w.Handle)
			})
			if !noSweep {
				sched := scheduler.New(ctx.cfg.Pipeline.RunTimeout, ctx.logger,
					scheduler.Job{
						Name:     "enrichment-sweep",
						Interval: ctx.cfg.Sweep.Interval,
						Run: func(jobCtx context.Context) error {
							_, err := svc.sweeper.Sweep(jobCtx)
							return err
						},
					},
					scheduler.Job{
						Name:     "feed-sweep",
						Interval: ctx.cfg.Sweep.FeedInterval,
						Run: func(jobCtx context.Context) error {
							_, err := svc.sweeper.SweepFeeds(jobCtx)
							return err
						},
					},
				)
				g.Go(func() error {
					return sched.Start(gctx)
				})
			}

			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			ctx.logger.Info("worker stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSweep, "no-sweep", false, "Do not run the periodic enrichment and feed sweeps")

	return cmd
}
