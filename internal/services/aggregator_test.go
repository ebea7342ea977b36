package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
	"poi-finder/internal/services/services_mocks"
)

func feature(id, name string, lat, lng float64) models.PlaceFeature {
	return models.PlaceFeature{ID: id, Name: name, Location: &geo.Coordinate{Lat: lat, Lng: lng}}
}

func candidateIDs(candidates []models.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ID
	}
	return out
}

func TestAggregateMergesAndDedupes(t *testing.T) {
	places := services_mocks.NewMockPlacesProvider(t)
	p1 := geo.Coordinate{Lat: 40, Lng: -75}
	p2 := geo.Coordinate{Lat: 40.05, Lng: -75}
	p3 := geo.Coordinate{Lat: 40.1, Lng: -75}

	places.On("Search", mock.Anything, p1, 5000.0, models.CategoryCafe, 50).
		Return([]models.PlaceFeature{
			feature("1", "One", 40, -75),
			feature("2", "Two", 40.01, -75),
			{ID: "nameless", Location: &geo.Coordinate{Lat: 40, Lng: -75}},
		}, nil)
	places.On("Search", mock.Anything, p2, 5000.0, models.CategoryCafe, 50).
		Return([]models.PlaceFeature{
			feature("2", "Two (second tile)", 40.02, -75),
			feature("3", "Three", 40.05, -75),
			{ID: "nowhere", Name: "No Location"},
		}, nil)
	places.On("Search", mock.Anything, p3, 5000.0, models.CategoryCafe, 50).
		Return(nil, errors.New("rate limited"))

	aggregator := NewAggregator(places, 50, 0, logger.NewTest())
	candidates := aggregator.Aggregate(context.Background(), []geo.CoveragePoint{
		{Center: p1, RadiusMeters: 5000},
		{Center: p2, RadiusMeters: 5000},
		{Center: p3, RadiusMeters: 5000},
	}, models.CategoryCafe)

	assert.Equal(t, []string{"1", "2", "3"}, candidateIDs(candidates))
	assert.Equal(t, "Two", candidates[1].Name)
	assert.Equal(t, 40.01, candidates[1].Location.Lat)
}

func TestAggregateDropsFeaturesWithoutID(t *testing.T) {
	places := services_mocks.NewMockPlacesProvider(t)
	p1 := geo.Coordinate{Lat: 40, Lng: -75}
	p2 := geo.Coordinate{Lat: 40.05, Lng: -75}

	places.On("Search", mock.Anything, p1, 5000.0, models.CategoryRestaurant, 50).
		Return([]models.PlaceFeature{
			feature("", "Unnamed Grill", 40, -75),
			feature("1", "One", 40.01, -75),
		}, nil)
	places.On("Search", mock.Anything, p2, 5000.0, models.CategoryRestaurant, 50).
		Return([]models.PlaceFeature{
			feature("", "Another Anonymous Cafe", 40.05, -75),
			feature("2", "Two", 40.06, -75),
		}, nil)

	aggregator := NewAggregator(places, 50, 2, logger.NewTest())
	candidates := aggregator.Aggregate(context.Background(), []geo.CoveragePoint{
		{Center: p1, RadiusMeters: 5000},
		{Center: p2, RadiusMeters: 5000},
	}, models.CategoryRestaurant)

	assert.Equal(t, []string{"1", "2"}, candidateIDs(candidates))
	for _, c := range candidates {
		assert.NotEmpty(t, c.ID)
	}
}

func TestAggregateAllFailed(t *testing.T) {
	places := services_mocks.NewMockPlacesProvider(t)
	places.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("down"))

	aggregator := NewAggregator(places, 50, 2, logger.NewTest())
	candidates := aggregator.Aggregate(context.Background(), []geo.CoveragePoint{
		{Center: geo.Coordinate{Lat: 1, Lng: 1}, RadiusMeters: 5000},
		{Center: geo.Coordinate{Lat: 2, Lng: 2}, RadiusMeters: 5000},
		{Center: geo.Coordinate{Lat: 3, Lng: 3}, RadiusMeters: 5000},
	}, models.CategoryRestaurant)

	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
	places.AssertNumberOfCalls(t, "Search", 3)
}

func TestAggregatorClampsProviderLimit(t *testing.T) {
	assert.Equal(t, MaxProviderLimit, NewAggregator(nil, 500, 0, logger.NewTest()).providerLimit)
	assert.Equal(t, MaxProviderLimit, NewAggregator(nil, 0, 0, logger.NewTest()).providerLimit)
	assert.Equal(t, 20, NewAggregator(nil, 20, 0, logger.NewTest()).providerLimit)
}
