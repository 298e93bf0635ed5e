package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"course_revisions/internal/config"
	"course_revisions/internal/publisher"
	"course_revisions/internal/scheduler"
	"course_revisions/internal/service"
	"course_revisions/internal/source/wiki"
	"course_revisions/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single pass and exit")
	var courseIDs courseIDsFlag
	flag.Var(&courseIDs, "course", "course ids to import, comma separated or repeated (implies -once)")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := run(ctx, cfg, logger, *once, courseIDs); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("syncer stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, once bool, courseIDs []int64) error {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()
	logger.Info("connected to database")

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// Course change events are optional
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	wikiSource := wiki.New(wiki.Config{
		BaseURLTemplate: cfg.API.BaseURLTemplate,
		UserAgent:       cfg.API.UserAgent,
		Limit:           cfg.API.Limit,
		Timeout:         cfg.API.Timeout,
		MaxAttempts:     cfg.API.Retry.MaxAttempts,
		InitialBackoff:  cfg.API.Retry.InitialBackoff,
		MaxBackoff:      cfg.API.Retry.MaxBackoff,
	}, logger)

	syncService := service.NewSyncService(
		wikiSource,
		postgres.NewCourseStore(db),
		postgres.NewWikiStore(db),
		postgres.NewArticleStore(db),
		postgres.NewRevisionStore(db),
		postgres.NewArticleCourseStore(db),
		postgres.NewSyncStateStore(db),
		postgres.NewTransactionManager(db),
		pub,
		logger,
		cfg.Sync,
	)

	if len(courseIDs) > 0 {
		passCtx, cancel := context.WithTimeout(ctx, cfg.Sync.PassTimeout)
		defer cancel()
		_, err := syncService.ImportCoursesByID(passCtx, courseIDs)
		return err
	}

	if once {
		passCtx, cancel := context.WithTimeout(ctx, cfg.Sync.PassTimeout)
		defer cancel()
		_, err := syncService.Sync(passCtx)
		return err
	}

	logger.Info("starting course revision syncer",
		"source", wikiSource.Name(),
		"interval", cfg.Sync.Interval,
		"default_wikis", cfg.Sync.DefaultWikis,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.PassTimeout, logger)
	return sched.Start(ctx)
}

// courseIDsFlag collects every -course value.
type courseIDsFlag []int64

func (f *courseIDsFlag) String() string {
	parts := make([]string, len(*f))
	for i, id := range *f {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func (f *courseIDsFlag) Set(value string) error {
	ids, err := parseCourseIDs(value)
	if err != nil {
		return err
	}
	*f = append(*f, ids...)
	return nil
}

func parseCourseIDs(list string) ([]int64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("bad course id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
