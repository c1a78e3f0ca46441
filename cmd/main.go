package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/erp/internal/api"
	"github.com/samandr77/microservices/erp/internal/api/events"
	"github.com/samandr77/microservices/erp/internal/httpclients/auth"
	"github.com/samandr77/microservices/erp/internal/httpclients/groq"
	"github.com/samandr77/microservices/erp/internal/httpclients/mailer"
	"github.com/samandr77/microservices/erp/internal/httpclients/nilvera"
	"github.com/samandr77/microservices/erp/internal/httpclients/s3"
	"github.com/samandr77/microservices/erp/internal/httpclients/veriban"
	"github.com/samandr77/microservices/erp/internal/repository"
	"github.com/samandr77/microservices/erp/internal/service"
	"github.com/samandr77/microservices/erp/pkg/broker"
	"github.com/samandr77/microservices/erp/pkg/cache"
	"github.com/samandr77/microservices/erp/pkg/config"
	"github.com/samandr77/microservices/erp/pkg/job"
	"github.com/samandr77/microservices/erp/pkg/logger"
	"github.com/samandr77/microservices/erp/pkg/postgres"
)

const (
	ReadTimeout = 20 * time.Second
	// streamed assistant answers can take a while
	WriteTimeout = 2 * time.Minute
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("init logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	redisClient, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	panicOnErr("connect to redis", err)
	defer redisClient.Close()

	repo := repository.New(pool)

	s3Client, err := s3.NewClient(ctx, cfg.S3)
	panicOnErr("new s3 client", err)

	llm := groq.NewClient(cfg.Groq)
	nilveraClient := nilvera.NewClient(cfg.Nilvera)
	veribanClient := veriban.NewClient(cfg.Veriban, cache.New(redisClient, "erp:veriban:session:"))
	mail := mailer.New(cfg.Mailer)

	producer := broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, cfg.Kafka.InvoiceReceivedTopic)
	defer producer.Close()

	s := service.New(repo, llm, nilveraClient, veribanClient, s3Client, mail, producer)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.InvoiceReceivedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.InvoiceReceivedTopic, eventHandler.OnInvoiceReceived)
		consumer.Consume(ctx)
	}

	runner := job.NewRunner().
		TryRegisterJob(cfg.Jobs.TransferCheckEnabled, "veriban_transfer_check", cfg.Jobs.TransferCheckInterval, s.CheckPendingTransfers).
		TryRegisterJob(cfg.Jobs.IncomingSyncEnabled, "incoming_invoice_sync", cfg.Jobs.IncomingSyncInterval, s.SyncAllIncoming)

	slog.InfoContext(ctx, "jobs registered", "jobs", runner.Jobs())

	runner.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(auth.NewClient(cfg.AuthServiceURL))

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	runner.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
