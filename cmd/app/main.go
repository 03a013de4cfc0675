package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"printshop/cmd"
	httpadapter "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/notifyqueue"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/adapters/out/postgres/settingsrepo"
	"printshop/internal/adapters/out/sheets"
	"printshop/internal/adapters/out/telegram"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/ports"
	"printshop/internal/jobs"
	"printshop/internal/pkg/tracing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const (
	serviceName     = "printshop"
	queueCapacity   = 256
	shutdownTimeout = 10 * time.Second
)

// runner is a background loop stopped by cancelling its context.
type runner interface {
	Run(ctx context.Context) error
}

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.TracingEnabled {
		shutdown, err := tracing.Setup(serviceName, os.Stderr)
		if err != nil {
			log.Fatalf("Failed to set up tracing: %v", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	db, err := postgres.Open(config.DB.DSN(), logger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	notifier := telegram.NewNotifier(
		config.TelegramAPIURL,
		settingsrepo.NewGormSettingsRepository(db),
		settings.Telegram{BotToken: config.TelegramBotToken, ChatID: config.TelegramChatID},
		logger,
	)

	queue, worker, closeQueue, err := newQueue(config, notifier, logger)
	if err != nil {
		log.Fatalf("Failed to set up notification queue: %v", err)
	}
	defer closeQueue()

	app := cmd.NewCompositionRoot(config, db, queue, logger)

	reminderJob := jobs.NewDeadlineReminderJob(
		app.CreateSendDeadlineRemindersCommandHandler(),
		config.DeadlineReminderSchedule,
		logger,
	)

	var sheetsJob *jobs.SheetsExportJob
	var exporter httpadapter.SheetsExporter
	if config.SheetsEnabled() {
		writer, err := sheets.NewWriter(ctx, config.SheetsCredentialsFile, config.SheetsSpreadsheetID, "")
		if err != nil {
			log.Fatalf("Failed to set up Google Sheets export: %v", err)
		}
		sheetsJob = jobs.NewSheetsExportJob(app.CreateExportOrdersQueryHandler(), writer, config.SheetsExportSchedule, logger)
		exporter = sheetsJob
	}

	jobManager := jobs.NewJobManager(reminderJob, sheetsJob)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(app.CreateHTTPHandlers(exporter), logger)
	e, err := httpadapter.NewEcho(server, logger)
	if err != nil {
		log.Fatalf("Failed to build HTTP router: %v", err)
	}

	if err := run(ctx, e, config.HTTPPort, worker, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func newQueue(
	config cmd.Config,
	notifier ports.Notifier,
	logger *slog.Logger,
) (ports.NotificationQueue, runner, func(), error) {
	if config.NotifyQueue != cmd.QueueRabbitMQ {
		q := notifyqueue.NewMemoryQueue(queueCapacity, config.NotifyWorkers, notifier, logger)
		return q, q, func() {}, nil
	}

	client, err := notifyqueue.DialRabbit(config.RabbitMQURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if _, err := client.DeclareQueue(config.RabbitMQQueue); err != nil {
		_ = client.Close()
		return nil, nil, nil, fmt.Errorf("declare queue %s: %w", config.RabbitMQQueue, err)
	}

	publisher := notifyqueue.NewRabbitPublisher(client.Channel(), config.RabbitMQQueue)
	consumer := notifyqueue.NewRabbitConsumer(client.Channel(), config.RabbitMQQueue, config.NotifyWorkers, notifier, logger)
	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close RabbitMQ connection", "error", err)
		}
	}
	return publisher, consumer, closeClient, nil
}

// run serves HTTP and drains the notification queue until ctx is cancelled or either fails.
func run(ctx context.Context, e *echo.Echo, port string, worker runner, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return worker.Run(gctx)
	})

	return g.Wait()
}
