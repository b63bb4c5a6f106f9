package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/e-bazaar/config"
	"github.com/alimikegami/e-bazaar/internal/app"
	circuitbreaker "github.com/alimikegami/e-bazaar/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/e-bazaar/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/e-bazaar/internal/infrastructure/mail"
	"github.com/alimikegami/e-bazaar/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/e-bazaar/internal/infrastructure/tracing"
	"github.com/alimikegami/e-bazaar/internal/repository"
	"github.com/alimikegami/e-bazaar/internal/service"
	"github.com/alimikegami/e-bazaar/internal/upload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "e-bazaar"

func main() {
	config := config.CreateNewConfig()

	if config.Environment == "production" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.ConnectionString, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Client().Disconnect(context.Background())

	if err := repository.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB indexes")
	}

	store, err := upload.CreateDiskStore(config.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare upload directory")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := app.Dependencies{
		Store:    store,
		Registry: registry,
	}

	if config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(context.Background(), config.TracingConfig.CollectorHost, serviceName, config.Environment)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()
			deps.Tracer = traceProvider.Tracer(serviceName)
		}
	}

	var publisher service.EventPublisher = kafka.NoopPublisher{}
	if config.KafkaConfig.BrokerAddress != "" {
		writer := kafka.CreateKafkaWriter(config)
		defer writer.Close()
		publisher = kafka.CreateKafkaProducer(writer, circuitbreaker.CreateCircuitBreaker(serviceName+"-events"))
	}
	deps.Publisher = publisher

	var mailer service.OrderMailer = mail.NoopMailer{}
	if config.SMTPConfig.Host != "" {
		mailer = mail.CreateSMTPMailer(config.SMTPConfig)
	}
	deps.Mailer = mailer

	application := &app.App{
		DB:       db,
		Config:   config,
		Server:   app.New(config, db, deps),
		Registry: deps.Registry,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := application.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server")
		}
	}()

	log.Info().Str("port", config.ServicePort).Msg("Starting server")
	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
