package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"poi-finder/internal/handlers"
	"poi-finder/internal/logger"
	"poi-finder/internal/services"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}

	cmd.Flags().String("server.port", "8080", "HTTP port")
	cmd.Flags().Bool("kafka.enabled", false, "publish search events to Kafka")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logger)

	a, err := newApp(cfg, log, true)
	if err != nil {
		log.WithError(err).Error("Failed to initialize application")
		return err
	}
	defer a.Close()

	searchHandler := handlers.NewSearchHandler(a.search, a.geolocation, &cfg.Search, log)
	cacheHandler := handlers.NewCacheMetricsHandler(services.NewCacheService(a.cache, log), log)
	kafkaHandler := handlers.NewKafkaMetricsHandler(services.NewKafkaMetricsService(a.kafkaMetrics), log)
	healthHandler := handlers.NewHealthHandler(a.healthChecks, log)

	route := func(h http.HandlerFunc) http.HandlerFunc {
		return handlers.CorrelationMiddleware(log, handlers.CORSMiddleware(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", route(searchHandler.Search))
	mux.HandleFunc("/api/search/meetup", route(searchHandler.Meetup))
	mux.HandleFunc("/api/search/route", route(searchHandler.Route))
	mux.HandleFunc("/api/cache/metrics", route(cacheHandler.GetStatistics))
	mux.HandleFunc("/api/kafka/stats", route(kafkaHandler.GetStatistics))
	mux.HandleFunc("/health", healthHandler.Health)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Server exited")
	return nil
}
