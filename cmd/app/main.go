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

	"kds/api"
	"kds/cmd"
	httpin "kds/internal/adapters/in/http"
	kafkain "kds/internal/adapters/in/kafka"
	"kds/internal/adapters/out/kafka"
	"kds/internal/adapters/out/postgres"
	"kds/internal/core/ports"
	"kds/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	gormDB := mustGormOpen(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	autoBump := app.CreateAutoBumpReadyOrdersCommandHandler()
	jobManager := jobs.NewJobManager(&autoBump, configs.AutoBumpSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	stopConsumer := startConsumer(configs, &app, logger)
	defer stopConsumer()

	startWebServer(&app, configs.HTTPPort, logger)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if !configs.KafkaEnabled() || configs.KafkaOrderChangedTopic == "" {
		logger.Warn("Order events are not published: kafka is not configured")
		return kafka.NopPublisher{}, func() {}
	}

	producer, err := kafka.NewSyncProducer(configs.KafkaHost)
	if err != nil {
		log.Fatalf("Error creating kafka producer: %v", err)
	}
	publisher := kafka.NewOrderEventsPublisher(producer, configs.KafkaOrderChangedTopic, logger)
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close kafka producer", "error", err)
		}
	}
}

func startConsumer(configs cmd.Config, app *cmd.CompositionRoot, logger *slog.Logger) func() {
	if !configs.KafkaEnabled() || configs.KafkaSaleCreatedTopic == "" {
		return func() {}
	}

	group, err := kafkain.NewConsumerGroup(kafka.SplitBrokers(configs.KafkaHost), configs.KafkaConsumerGroup)
	if err != nil {
		log.Fatalf("Error creating kafka consumer group: %v", err)
	}

	createOrder := app.CreateCreateOrderCommandHandler()
	consumer := kafkain.NewSaleCreatedConsumer(group, configs.KafkaSaleCreatedTopic, &createOrder, logger)
	if err := consumer.Start(); err != nil {
		log.Fatalf("Error starting sale consumer: %v", err)
	}
	return func() {
		if err := consumer.Stop(); err != nil {
			logger.Error("Failed to stop sale consumer", "error", err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := api.GetSwagger()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	if err := api.RegisterSwagger(doc); err != nil {
		log.Fatalf("Error registering swagger: %v", err)
	}

	metrics, err := httpin.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Error registering metrics: %v", err)
	}

	server := httpin.NewServer(app.CreateHTTPHandlers(), metrics)
	e, err := httpin.NewEcho(server, doc, metrics, prometheus.DefaultGatherer, logger)
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	waitForShutdown(e)
}

func waitForShutdown(e *echo.Echo) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
