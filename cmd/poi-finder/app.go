package main

import (
	"context"
	"fmt"

	"github.com/olivere/elastic/v7"
	"github.com/spf13/cobra"

	"poi-finder/internal/cache"
	"poi-finder/internal/config"
	"poi-finder/internal/database"
	"poi-finder/internal/handlers"
	"poi-finder/internal/kafka"
	"poi-finder/internal/logger"
	"poi-finder/internal/providers"
	"poi-finder/internal/redis"
	"poi-finder/internal/services"
)

// app - собранные зависимости приложения
type app struct {
	cfg          *config.Config
	log          *logger.Logger
	cache        cache.Cache
	search       *services.SearchService
	geolocation  *services.GeolocationService
	kafkaMetrics *kafka.Metrics
	healthChecks map[string]handlers.HealthCheck
	closers      []func() error
}

// loadConfig читает конфигурацию с учётом флагов команды
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, cmd.Flags())
}

// newApp подключает кеш, поставщиков и Kafka согласно конфигурации
func newApp(cfg *config.Config, log *logger.Logger, withEvents bool) (*app, error) {
	a := &app{
		cfg:          cfg,
		log:          log,
		healthChecks: make(map[string]handlers.HealthCheck),
	}

	if err := a.initCache(); err != nil {
		a.Close()
		return nil, err
	}

	places, err := a.initPlaces()
	if err != nil {
		a.Close()
		return nil, err
	}

	ratings, err := a.initRatings()
	if err != nil {
		a.Close()
		return nil, err
	}

	var publisher services.EventPublisher
	if withEvents && cfg.Kafka.Enabled {
		a.kafkaMetrics = kafka.NewMetrics()
		producer, err := kafka.NewProducer(&cfg.Kafka, log, a.kafkaMetrics)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, producer.Close)
		publisher = producer
	}

	a.geolocation = services.NewGeolocationService(&cfg.Geolocation, a.cache, cfg.Cache.RouteTTL, log)
	a.search = services.NewSearchService(&cfg.Search, places, ratings, publisher, log)

	return a, nil
}

func (a *app) initCache() error {
	switch a.cfg.Cache.Backend {
	case "redis":
		client, err := redis.Connect(&a.cfg.Redis, a.log)
		if err != nil {
			return err
		}
		a.cache = client
		a.closers = append(a.closers, client.Close)
		a.healthChecks["redis"] = client.Health
	case "memory":
		a.cache = cache.NewMemory(a.cfg.Cache.PlacesTTL, a.cfg.Cache.CleanupInterval, a.log)
	case "none", "":
	default:
		return fmt.Errorf("unknown cache backend %q", a.cfg.Cache.Backend)
	}
	return nil
}

func (a *app) initPlaces() (services.PlacesProvider, error) {
	var places services.PlacesProvider

	switch a.cfg.Places.Backend {
	case "geoapify":
		places = providers.NewGeoapifyClient(a.cfg.Places.GeoapifyAPIKey, "", a.cfg.Places.Timeout, a.log)
	case "postgres":
		db, err := database.Connect(&a.cfg.Database, a.log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		a.healthChecks["postgres"] = db.PingContext

		catalog := providers.NewPostgresPlaces(db, a.log)
		if err := catalog.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		places = catalog
	case "elastic":
		client, err := providers.NewElasticClient(&a.cfg.Elastic)
		if err != nil {
			return nil, err
		}
		a.healthChecks["elastic"] = elasticPing(client, a.cfg.Elastic.URL)
		places = providers.NewElasticPlaces(client, a.cfg.Elastic.Index, a.log)
	default:
		return nil, fmt.Errorf("unknown places backend %q", a.cfg.Places.Backend)
	}

	if a.cache != nil {
		places = providers.NewCachedPlaces(places, a.cache, a.cfg.Cache.PlacesTTL, a.log)
	}
	return places, nil
}

func (a *app) initRatings() (services.RatingsProvider, error) {
	switch a.cfg.Ratings.Backend {
	case "yelp":
		var ratings services.RatingsProvider = providers.NewYelpClient(a.cfg.Ratings.YelpAPIKey, "", a.cfg.Ratings.Timeout, a.log)
		if a.cache != nil {
			ratings = providers.NewCachedRatings(ratings, a.cache, a.cfg.Cache.RatingsTTL, a.log)
		}
		return ratings, nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown ratings backend %q", a.cfg.Ratings.Backend)
	}
}

// Close закрывает подключения в обратном порядке
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.WithError(err).Error("Failed to close resource")
		}
	}
}

func elasticPing(client *elastic.Client, url string) handlers.HealthCheck {
	return func(ctx context.Context) error {
		_, _, err := client.Ping(url).Do(ctx)
		return err
	}
}
