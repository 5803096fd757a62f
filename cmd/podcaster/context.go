package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"podcaster/internal/ai"
	"podcaster/internal/config"
	"podcaster/internal/objectstore"
	"podcaster/internal/service"
	"podcaster/internal/storage/postgres"
	"podcaster/internal/taskqueue"
)

// commandContext owns the configuration and the connections opened for one command.
type commandContext struct {
	configFlag *string

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error

	db      *sqlx.DB
	objects *objectstore.Store
	queue   *taskqueue.RabbitMQ
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) load() error {
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger, c.closeLog = config.SetupLogger(cfg.LogLevel, cfg.LogFile)
	return nil
}

func (c *commandContext) close() error {
	var errs []error
	if c.queue != nil {
		errs = append(errs, c.queue.Close())
	}
	if c.db != nil {
		errs = append(errs, c.db.Close())
	}
	if c.closeLog != nil {
		errs = append(errs, c.closeLog())
	}
	return errors.Join(errs...)
}

func (c *commandContext) database() (*sqlx.DB, error) {
	if c.db != nil {
		return c.db, nil
	}

	db, err := sqlx.Connect("postgres", c.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.logger.Info("connected to database")
	c.db = db
	return db, nil
}

func (c *commandContext) objectStore(ctx context.Context) (*objectstore.Store, error) {
	if c.objects != nil {
		return c.objects, nil
	}

	store, err := objectstore.New(ctx, objectstore.Config{
		Endpoint:      c.cfg.Storage.Endpoint,
		AccessKey:     c.cfg.Storage.AccessKey,
		SecretKey:     c.cfg.Storage.SecretKey,
		Region:        c.cfg.Storage.Region,
		Bucket:        c.cfg.Storage.Bucket,
		UseSSL:        c.cfg.Storage.UseSSL,
		PublicBaseURL: c.cfg.Storage.PublicBaseURL,
	}, c.logger)
	if err != nil {
		return nil, err
	}
	c.objects = store
	return store, nil
}

func (c *commandContext) taskQueue() (*taskqueue.RabbitMQ, error) {
	if c.queue != nil {
		return c.queue, nil
	}

	queue, err := taskqueue.NewRabbitMQ(taskqueue.Config{
		URL:         c.cfg.RabbitMQ.URL,
		Exchange:    c.cfg.RabbitMQ.Exchange,
		RoutingKey:  c.cfg.RabbitMQ.RoutingKey,
		QueueName:   c.cfg.RabbitMQ.QueueName,
		Prefetch:    c.cfg.RabbitMQ.Prefetch,
		MaxAttempts: c.cfg.RabbitMQ.MaxAttempts,

		RetryInitialDelay: c.cfg.RabbitMQ.RetryInitialDelay,
		RetryMaxDelay:     c.cfg.RabbitMQ.RetryMaxDelay,
	}, c.logger)
	if err != nil {
		return nil, err
	}
	c.queue = queue
	return queue, nil
}

// services wires the catalog, publisher and sweeper; the enrichment service is built
// separately because it needs provider credentials.
type services struct {
	catalog *service.CatalogService
	feeds   *service.FeedService
	sweeper *service.Sweeper
}

func (c *commandContext) services(ctx context.Context) (*services, error) {
	db, err := c.database()
	if err != nil {
		return nil, err
	}
	objects, err := c.objectStore(ctx)
	if err != nil {
		return nil, err
	}
	queue, err := c.taskQueue()
	if err != nil {
		return nil, err
	}

	podcasts := postgres.NewPodcastStore(db)
	episodes := postgres.NewEpisodeStore(db)
	versions := postgres.NewFeedVersionStore(db)
	txManager := postgres.NewTransactionManager(db, postgres.WithLogger(c.logger))

	return &services{
		catalog: service.NewCatalogService(podcasts, episodes, versions, objects, txManager, queue, c.logger),
		feeds:   service.NewFeedService(podcasts, episodes, versions, objects, txManager, c.logger, c.cfg.Pipeline),
		sweeper: service.NewSweeper(episodes, podcasts, queue, c.logger, c.cfg.Sweep),
	}, nil
}

func (c *commandContext) enrichment(ctx context.Context) (*service.EnrichmentService, error) {
	db, err := c.database()
	if err != nil {
		return nil, err
	}
	objects, err := c.objectStore(ctx)
	if err != nil {
		return nil, err
	}
	queue, err := c.taskQueue()
	if err != nil {
		return nil, err
	}

	generator, err := ai.NewGenerator(ctx, c.cfg.Generation)
	if err != nil {
		return nil, err
	}

	transcriber := ai.NewTranscriber(ai.TranscriberConfig{
		BaseURL:        c.cfg.Transcription.BaseURL,
		AccountID:      c.cfg.Transcription.AccountID,
		APIToken:       c.cfg.Transcription.APIToken,
		Model:          c.cfg.Transcription.Model,
		Timeout:        c.cfg.Transcription.Timeout,
		MaxAttempts:    c.cfg.Transcription.Retry.MaxAttempts,
		InitialBackoff: c.cfg.Transcription.Retry.InitialBackoff,
		MaxBackoff:     c.cfg.Transcription.Retry.MaxBackoff,
	}, c.logger)

	c.logger.Info("text generation configured",
		"provider", c.cfg.Generation.Provider,
		"model", generator.Model(),
	)

	return service.NewEnrichmentService(
		postgres.NewEpisodeStore(db),
		postgres.NewPodcastStore(db),
		objects,
		transcriber,
		generator,
		queue,
		c.logger,
		c.cfg.Pipeline,
	), nil
}
