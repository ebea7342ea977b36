package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"poi-finder/internal/cache"
	"poi-finder/internal/config"
	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

var (
	// ErrAddressNotFound - геокодер не нашёл ни одного объекта по адресу
	ErrAddressNotFound = errors.New("address not found")
	// ErrGeolocationFailed - внешний геосервис недоступен или ответил ошибкой
	ErrGeolocationFailed = errors.New("geolocation service failed")
)

/*
GeolocationService - сервис для работы с геосервисами.
GeolocationService.yandexKey - API-ключ для работы с Яндекс-Геокодер для получения координат адресов
GeolocationService.openrouteKey - API-ключ для работы с OpenrouteService для построения маршрута между точками
*/
type GeolocationService struct {
	openrouteKey string
	yandexKey    string
	yandexURL    string
	openrouteURL string
	httpClient   *http.Client
	cache        cache.Cache
	cacheTTL     time.Duration
	log          *logger.Logger
}

// NewGeolocationService создаёт новый экземпляр геосервиса. cache может быть nil
func NewGeolocationService(cfg *config.GeolocationConfig, c cache.Cache, cacheTTL time.Duration, log *logger.Logger) *GeolocationService {
	return &GeolocationService{
		openrouteKey: cfg.OpenrouteAPIKey,
		yandexKey:    cfg.YandexAPIKey,
		yandexURL:    models.YandexGeocoderURL,
		openrouteURL: models.OpenrouteDirectionsURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		cache:        c,
		cacheTTL:     cacheTTL,
		log:          log,
	}
}

// SetEndpoints подменяет адреса геокодера и сервиса маршрутов
func (g *GeolocationService) SetEndpoints(yandexURL, openrouteURL string) {
	g.yandexURL = yandexURL
	g.openrouteURL = openrouteURL
}

// GetCoordinates возвращает координаты адреса. Строка вида "lat,lng" разбирается без обращения к геокодеру
func (g *GeolocationService) GetCoordinates(ctx context.Context, address string) (geo.Coordinate, error) {
	if c, err := geo.ParseLatLng(address); err == nil {
		return c, nil
	}

	cacheKey := cache.GenerateKey(cache.KeyPrefixGeocode, address)
	var cached geo.Coordinate
	if g.fromCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	requestURL := fmt.Sprintf(
		"%s?apikey=%s&geocode=%s&results=%d&format=%s",
		g.yandexURL,
		g.yandexKey,
		url.QueryEscape(address),
		1,
		"json",
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("failed to create request: %w", err)
	}

	var apiResponse models.YandexResponse
	if err := g.do(req, "Yandex", &apiResponse); err != nil {
		return geo.Coordinate{}, err
	}

	featureMember := apiResponse.Response.GeoObjectCollection.FeatureMember
	if len(featureMember) == 0 {
		g.log.WithField("address", address).Warn("No objects in response body")
		return geo.Coordinate{}, fmt.Errorf("%w: %s", ErrAddressNotFound, address)
	}

	var c geo.Coordinate
	pos := featureMember[0].GeoObject.Point.Pos
	if _, err := fmt.Sscanf(pos, "%f %f", &c.Lng, &c.Lat); err != nil {
		g.log.WithError(err).Error("Failed to parse coordinates")
		return geo.Coordinate{}, fmt.Errorf("%w: failed to parse coordinates %q", ErrGeolocationFailed, pos)
	}

	g.toCache(ctx, cacheKey, c)
	return c, nil
}

// MakeRoute возвращает линию автомобильного маршрута между двумя точками
func (g *GeolocationService) MakeRoute(ctx context.Context, from, to geo.Coordinate) (geo.Polyline, error) {
	cacheKey := cache.GenerateKey(cache.KeyPrefixRoute, from.String()+":"+to.String())
	var cached models.GeoCache
	if g.fromCache(ctx, cacheKey, &cached) {
		return toPolyline(cached.Polyline), nil
	}

	requestBody := models.OpenrouteRequest{
		Coordinates:  [][2]float64{{from.Lng, from.Lat}, {to.Lng, to.Lat}},
		Instructions: false,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.openrouteURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", g.openrouteKey)

	var apiResponse models.OpenrouteResponse
	if err := g.do(req, "Openroute", &apiResponse); err != nil {
		return nil, err
	}

	if len(apiResponse.Features) == 0 || len(apiResponse.Features[0].Geometry.Coordinates) < 2 {
		g.log.Warn("Openroute returned empty route")
		return nil, fmt.Errorf("%w: empty route", ErrGeolocationFailed)
	}

	raw := apiResponse.Features[0].Geometry.Coordinates
	g.toCache(ctx, cacheKey, models.GeoCache{
		From:     [2]float64{from.Lng, from.Lat},
		To:       [2]float64{to.Lng, to.Lat},
		Polyline: raw,
	})

	return toPolyline(raw), nil
}

// do выполняет запрос и разбирает JSON-ответ. Все ошибки оборачиваются в ErrGeolocationFailed
func (g *GeolocationService) do(req *http.Request, api string, dest interface{}) error {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.WithError(err).Errorf("Failed to get response from %s API", api)
		return fmt.Errorf("%w: %v", ErrGeolocationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		g.log.WithFields(map[string]interface{}{
			"status_code": resp.StatusCode,
			"respBody":    string(body),
		}).Errorf("Bad response from %s API", api)
		return fmt.Errorf("%w: bad response with status code %d", ErrGeolocationFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		g.log.WithError(err).Errorf("Failed to unmarshal %s API response", api)
		return fmt.Errorf("%w: %v", ErrGeolocationFailed, err)
	}

	return nil
}

func (g *GeolocationService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if g.cache == nil {
		return false
	}
	if err := g.cache.Get(ctx, key, dest); err != nil {
		g.cache.Miss()
		return false
	}
	g.cache.Hit()
	return true
}

func (g *GeolocationService) toCache(ctx context.Context, key string, value interface{}) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Set(ctx, key, value, g.cacheTTL); err != nil {
		g.log.WithError(err).Error("Failed to cache geolocation result")
	}
}

// toPolyline переводит пары [lng, lat] в точки маршрута
func toPolyline(raw [][2]float64) geo.Polyline {
	line := make(geo.Polyline, len(raw))
	for i, p := range raw {
		line[i] = geo.Coordinate{Lat: p[1], Lng: p[0]}
	}
	return line
}
