package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-finder/internal/cache"
	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

type countingPlaces struct {
	calls    int
	features []models.PlaceFeature
	err      error
}

func (c *countingPlaces) Search(_ context.Context, _ geo.Coordinate, _ float64, _ models.Category, _ int) ([]models.PlaceFeature, error) {
	c.calls++
	return c.features, c.err
}

type countingRatings struct {
	calls int
	info  *models.RatingInfo
	err   error
}

func (c *countingRatings) Lookup(_ context.Context, _ string, _ geo.Coordinate) (*models.RatingInfo, error) {
	c.calls++
	return c.info, c.err
}

func newTestCache() *cache.Memory {
	return cache.NewMemory(time.Minute, time.Minute, logger.NewTest())
}

func TestCachedPlaces(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()
	next := &countingPlaces{features: []models.PlaceFeature{{ID: "1", Name: "A", Location: &geo.Coordinate{Lat: 1, Lng: 2}}}}
	cached := NewCachedPlaces(next, c, time.Minute, logger.NewTest())

	center := geo.Coordinate{Lat: 40, Lng: -75}
	first, err := cached.Search(ctx, center, 5000, models.CategoryRestaurant, 50)
	require.NoError(t, err)
	second, err := cached.Search(ctx, center, 5000, models.CategoryRestaurant, 50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)

	// Другая категория - другой ключ
	_, err = cached.Search(ctx, center, 5000, models.CategoryCafe, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)

	hits, misses, _, _ := c.GetMetrics(ctx)
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(2), misses)
}

func TestCachedPlacesDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	next := &countingPlaces{err: errors.New("provider down")}
	cached := NewCachedPlaces(next, newTestCache(), time.Minute, logger.NewTest())

	_, err := cached.Search(ctx, geo.Coordinate{}, 1000, models.CategoryBar, 10)
	assert.Error(t, err)
	_, err = cached.Search(ctx, geo.Coordinate{}, 1000, models.CategoryBar, 10)
	assert.Error(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedRatingsRemembersNoMatch(t *testing.T) {
	ctx := context.Background()
	next := &countingRatings{}
	cached := NewCachedRatings(next, newTestCache(), time.Minute, logger.NewTest())

	for i := 0; i < 3; i++ {
		info, err := cached.Lookup(ctx, "Ghost Kitchen", geo.Coordinate{Lat: 1, Lng: 1})
		require.NoError(t, err)
		assert.Nil(t, info)
	}
	assert.Equal(t, 1, next.calls)
}

func TestCachedRatings(t *testing.T) {
	ctx := context.Background()
	next := &countingRatings{info: &models.RatingInfo{ID: "y1", Rating: 4, Cuisines: []string{"Diners"}}}
	cached := NewCachedRatings(next, newTestCache(), time.Minute, logger.NewTest())

	first, err := cached.Lookup(ctx, "Blue Diner", geo.Coordinate{Lat: 1, Lng: 1})
	require.NoError(t, err)
	second, err := cached.Lookup(ctx, " blue diner ", geo.Coordinate{Lat: 1, Lng: 1})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)
}
