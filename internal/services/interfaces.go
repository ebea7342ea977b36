package services

import (
	"context"

	"poi-finder/internal/geo"
	"poi-finder/internal/models"
)

// PlacesProvider - источник сырых записей о местах
type PlacesProvider interface {
	Search(ctx context.Context, center geo.Coordinate, radiusMeters float64, category models.Category, limit int) ([]models.PlaceFeature, error)
}

// RatingsProvider - источник рейтингов. (nil, nil) означает, что совпадение не найдено
type RatingsProvider interface {
	Lookup(ctx context.Context, name string, location geo.Coordinate) (*models.RatingInfo, error)
}

// EventPublisher публикует события о выполненных поисках
type EventPublisher interface {
	PublishSearchCompleted(ctx context.Context, event *models.SearchEvent) error
}

type SearchServiceInterface interface {
	Search(ctx context.Context, req models.SearchRequest) (models.RankedResult, error)
	SearchAlongRoute(ctx context.Context, req models.SearchRequest) (models.RankedResult, error)
}

type GeolocationServiceInterface interface {
	GetCoordinates(ctx context.Context, address string) (geo.Coordinate, error)
	MakeRoute(ctx context.Context, from, to geo.Coordinate) (geo.Polyline, error)
}

type CacheServiceInterface interface {
	GetStatistics(ctx context.Context) (*models.CacheMetricsResponse, error)
}

type KafkaMetricsServiceInterface interface {
	GetStatistics() *models.KafkaMetricsResponse
}
