package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

// GeoapifyClient - поставщик мест на основе Geoapify Places API
type GeoapifyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewGeoapifyClient создаёт клиент Geoapify. Пустой baseURL означает боевой адрес API
func NewGeoapifyClient(apiKey, baseURL string, timeout time.Duration, log *logger.Logger) *GeoapifyClient {
	if baseURL == "" {
		baseURL = models.GeoapifyPlacesURL
	}
	return &GeoapifyClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Search возвращает места категории category в круге радиусом radiusMeters
func (c *GeoapifyClient) Search(ctx context.Context, center geo.Coordinate, radiusMeters float64, category models.Category, limit int) ([]models.PlaceFeature, error) {
	params := url.Values{}
	params.Set("categories", string(category))
	params.Set("filter", fmt.Sprintf("circle:%f,%f,%.0f", center.Lng, center.Lat, radiusMeters))
	params.Set("bias", fmt.Sprintf("proximity:%f,%f", center.Lng, center.Lat))
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Geoapify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.WithFields(map[string]interface{}{
			"status_code": resp.StatusCode,
			"respBody":    string(body),
		}).Error("Bad response from Geoapify API")
		return nil, fmt.Errorf("bad response with status code %d", resp.StatusCode)
	}

	var apiResponse models.GeoapifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Geoapify response: %w", err)
	}

	features := make([]models.PlaceFeature, 0, len(apiResponse.Features))
	for _, f := range apiResponse.Features {
		p := f.Properties
		feature := models.PlaceFeature{
			ID:           p.PlaceID,
			Name:         p.Name,
			AddressLine1: p.AddressLine1,
			AddressLine2: p.AddressLine2,
			Categories:   p.Categories,
			Website:      p.Website,
		}
		if p.Lat != nil && p.Lon != nil {
			feature.Location = &geo.Coordinate{Lat: *p.Lat, Lng: *p.Lon}
		}
		features = append(features, feature)
	}

	return features, nil
}
