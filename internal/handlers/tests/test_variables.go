package handler_tests

import (
	"errors"
	"fmt"
	"net/http"

	"poi-finder/internal/config"
	"poi-finder/internal/geo"
	"poi-finder/internal/models"
	"poi-finder/internal/services"
)

// Обычные переменные
var searchConfig = &config.SearchConfig{DefaultRadiusMiles: 2, DefaultLimit: 10, MaxRadiusMiles: 25}
var fromCoordinate = geo.Coordinate{Lat: 40, Lng: -75}
var toCoordinate = geo.Coordinate{Lat: 40.2, Lng: -74.8}
var routeLine = geo.Polyline{fromCoordinate, {Lat: 40.1, Lng: -74.9}, toCoordinate}

// Экземпляры моделей приложения
var place1 = models.EnrichedPlace{
	ID:          "place-1",
	Name:        "Blue Diner",
	Location:    &geo.Coordinate{Lat: 40.01, Lng: -75},
	Distance:    "0.7 mi",
	Rating:      4.5,
	ReviewCount: 120,
	Price:       "$$",
	Address:     "1 Main St, Town",
	Cuisines:    []string{"Diners"},
}
var place2 = models.EnrichedPlace{
	ID:       "place-2",
	Name:     "Corner Cafe",
	Location: &geo.Coordinate{Lat: 40.02, Lng: -75},
	Distance: "1.4 mi",
	Cuisines: []string{},
}
var rankedResult = models.RankedResult{place1, place2}

var cacheMetrics = &models.CacheMetricsResponse{
	Backend:   "redis",
	HitRate:   75,
	MissRate:  25,
	CacheSize: 1000,
}

var kafkaMetrics = &models.KafkaMetricsResponse{
	Statistics: []models.KafkaTopicMetricsResponse{
		{Topic: "dead_letter_queue", TotalPublishedEvents: 1, Errors: 0, AvgPublishDuration: "2 ms"},
		{Topic: "search_events", TotalPublishedEvents: 10, Errors: 1, AvgPublishDuration: "4 ms"},
	},
}

// Ошибки
var errorInternalServerError = errors.New("internal Server Error")
var errorValidation = fmt.Errorf("%w: limit must be positive", models.ErrInvalidRequest)
var errorCoordinate = fmt.Errorf("origin: %w", geo.ErrInvalidCoordinate)
var errorAddressNotFound = fmt.Errorf("%w: Atlantis", services.ErrAddressNotFound)
var errorGeolocation = fmt.Errorf("%w: bad response with status code 500", services.ErrGeolocationFailed)

// Тесткейсы для POST /api/search
var searchTestCases = []struct {
	name               string
	payload            interface{}
	returnedValue      models.RankedResult
	returnedError      error
	expectedStatusCode int
}{
	{
		"test_ok",
		map[string]interface{}{
			"origin":          map[string]float64{"lat": 40, "lng": -75},
			"category":        "catering.restaurant",
			"radius_miles":    2,
			"limit":           5,
			"distance_origin": map[string]float64{"lat": 40, "lng": -75},
			"mode":            "meetup",
		},
		rankedResult,
		nil,
		http.StatusOK,
	},
	{
		"test_empty_result",
		map[string]interface{}{"origin": map[string]float64{"lat": 40, "lng": -75}, "distance_origin": map[string]float64{"lat": 40, "lng": -75}, "mode": "meetup"},
		models.RankedResult{},
		nil,
		http.StatusOK,
	},
	{
		"test_validation_error",
		map[string]interface{}{"origin": map[string]float64{"lat": 40, "lng": -75}, "distance_origin": map[string]float64{"lat": 40, "lng": -75}, "limit": -1, "mode": "meetup"},
		nil,
		errorValidation,
		http.StatusBadRequest,
	},
	{
		"test_invalid_coordinate",
		map[string]interface{}{"origin": map[string]float64{"lat": 95, "lng": -75}, "distance_origin": map[string]float64{"lat": 40, "lng": -75}, "mode": "meetup"},
		nil,
		errorCoordinate,
		http.StatusBadRequest,
	},
	{
		"test_server_error",
		map[string]interface{}{"origin": map[string]float64{"lat": 40, "lng": -75}, "distance_origin": map[string]float64{"lat": 40, "lng": -75}, "mode": "meetup"},
		nil,
		errorInternalServerError,
		http.StatusInternalServerError,
	},
}

// Тела POST /api/search без обязательных координат, сервис не вызывается
var missingCoordinateTestCases = []struct {
	name    string
	payload interface{}
}{
	{"test_missing_origin", map[string]interface{}{"distance_origin": fromCoordinate, "mode": "meetup"}},
	{"test_null_origin", map[string]interface{}{"origin": nil, "distance_origin": fromCoordinate, "mode": "meetup"}},
	{"test_missing_distance_origin", map[string]interface{}{"origin": fromCoordinate, "mode": "meetup"}},
	{"test_empty_body", map[string]interface{}{}},
}

// Недопустимые значения radius для GET /api/search/meetup
var invalidRadiusValues = []string{"NaN", "Inf", "-Inf", "wide", "25.5", "1e12"}

// Тесткейсы для GET /api/search/meetup
var meetupGeocodeTestCases = []struct {
	name               string
	geocodeError       error
	expectedStatusCode int
}{
	{"test_address_not_found", errorAddressNotFound, http.StatusNotFound},
	{"test_geocoder_unavailable", errorGeolocation, http.StatusBadGateway},
}
