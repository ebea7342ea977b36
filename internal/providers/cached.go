package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"poi-finder/internal/cache"
	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

type placesSearcher interface {
	Search(ctx context.Context, center geo.Coordinate, radiusMeters float64, category models.Category, limit int) ([]models.PlaceFeature, error)
}

type ratingsLooker interface {
	Lookup(ctx context.Context, name string, location geo.Coordinate) (*models.RatingInfo, error)
}

// CachedPlaces кеширует успешные ответы поставщика мест. Ошибки не кешируются
type CachedPlaces struct {
	next  placesSearcher
	cache cache.Cache
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedPlaces оборачивает поставщика мест кешем
func NewCachedPlaces(next placesSearcher, c cache.Cache, ttl time.Duration, log *logger.Logger) *CachedPlaces {
	return &CachedPlaces{next: next, cache: c, ttl: ttl, log: log}
}

func (c *CachedPlaces) Search(ctx context.Context, center geo.Coordinate, radiusMeters float64, category models.Category, limit int) ([]models.PlaceFeature, error) {
	key := cache.GenerateKey(cache.KeyPrefixPlaces,
		fmt.Sprintf("%s:%.5f:%.5f:%.0f:%d", category, center.Lat, center.Lng, radiusMeters, limit))

	var features []models.PlaceFeature
	if err := c.cache.Get(ctx, key, &features); err == nil {
		c.cache.Hit()
		return features, nil
	}
	c.cache.Miss()

	features, err := c.next.Search(ctx, center, radiusMeters, category, limit)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, features, c.ttl); err != nil {
		c.log.WithError(err).Error("Failed to cache places")
	}

	return features, nil
}

// ratingsEntry хранит и отсутствие совпадения, чтобы не запрашивать его повторно
type ratingsEntry struct {
	Found bool               `json:"found"`
	Info  *models.RatingInfo `json:"info,omitempty"`
}

// CachedRatings кеширует ответы поставщика рейтингов, включая отсутствие совпадения
type CachedRatings struct {
	next  ratingsLooker
	cache cache.Cache
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedRatings оборачивает поставщика рейтингов кешем
func NewCachedRatings(next ratingsLooker, c cache.Cache, ttl time.Duration, log *logger.Logger) *CachedRatings {
	return &CachedRatings{next: next, cache: c, ttl: ttl, log: log}
}

func (c *CachedRatings) Lookup(ctx context.Context, name string, location geo.Coordinate) (*models.RatingInfo, error) {
	key := cache.GenerateKey(cache.KeyPrefixRatings,
		fmt.Sprintf("%s:%.5f:%.5f", strings.ToLower(strings.TrimSpace(name)), location.Lat, location.Lng))

	var entry ratingsEntry
	if err := c.cache.Get(ctx, key, &entry); err == nil {
		c.cache.Hit()
		if !entry.Found {
			return nil, nil
		}
		return entry.Info, nil
	}
	c.cache.Miss()

	info, err := c.next.Lookup(ctx, name, location)
	if err != nil {
		return nil, err
	}

	entry = ratingsEntry{Found: info != nil, Info: info}
	if err := c.cache.Set(ctx, key, entry, c.ttl); err != nil {
		c.log.WithError(err).Error("Failed to cache rating")
	}

	return info, nil
}
