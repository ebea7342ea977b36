package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

// YelpClient - поставщик рейтингов на основе Yelp Fusion
type YelpClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewYelpClient создаёт клиент Yelp. Пустой baseURL означает боевой адрес API
func NewYelpClient(apiKey, baseURL string, timeout time.Duration, log *logger.Logger) *YelpClient {
	if baseURL == "" {
		baseURL = models.YelpBusinessSearch
	}
	return &YelpClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Lookup ищет заведение по названию рядом с точкой. Отсутствие совпадения - (nil, nil)
func (c *YelpClient) Lookup(ctx context.Context, name string, location geo.Coordinate) (*models.RatingInfo, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrInvalidRequest)
	}

	params := url.Values{}
	params.Set("term", name)
	params.Set("latitude", fmt.Sprintf("%f", location.Lat))
	params.Set("longitude", fmt.Sprintf("%f", location.Lng))
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Yelp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.WithFields(map[string]interface{}{
			"status_code": resp.StatusCode,
			"respBody":    string(body),
		}).Error("Bad response from Yelp API")
		return nil, fmt.Errorf("bad response with status code %d", resp.StatusCode)
	}

	var apiResponse models.YelpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Yelp response: %w", err)
	}

	if len(apiResponse.Businesses) == 0 {
		return nil, nil
	}

	return ratingFromYelp(apiResponse.Businesses[0]), nil
}

func ratingFromYelp(b models.YelpBusiness) *models.RatingInfo {
	cuisines := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		cuisines = append(cuisines, c.Title)
	}

	return &models.RatingInfo{
		ID:               b.ID,
		Rating:           b.Rating,
		ReviewCount:      b.ReviewCount,
		Price:            b.Price,
		Website:          b.URL,
		Phone:            b.DisplayPhone,
		Address:          strings.Join(b.Location.DisplayAddress, ", "),
		Cuisines:         cuisines,
		IsClosed:         b.IsClosed,
		ProviderDistance: b.Distance,
	}
}
