package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

const yelpBody = `{
	"businesses": [{
		"id": "yelp-1", "name": "Blue Diner", "rating": 4.5, "review_count": 321, "price": "$$",
		"url": "https://yelp.example/blue", "display_phone": "(555) 010-0000", "is_closed": false,
		"distance": 1234.5,
		"location": {"display_address": ["1 Main St", "Town, PA 19000"]},
		"categories": [{"alias": "diners", "title": "Diners"}, {"alias": "breakfast_brunch", "title": "Breakfast & Brunch"}]
	}]
}`

func TestYelpLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "Blue Diner", r.URL.Query().Get("term"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(yelpBody))
	}))
	defer server.Close()

	client := NewYelpClient("secret", server.URL, time.Second, logger.NewTest())
	info, err := client.Lookup(context.Background(), "Blue Diner", geo.Coordinate{Lat: 40, Lng: -75})
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, "yelp-1", info.ID)
	assert.Equal(t, 4.5, info.Rating)
	assert.Equal(t, 321, info.ReviewCount)
	assert.Equal(t, "$$", info.Price)
	assert.Equal(t, "1 Main St, Town, PA 19000", info.Address)
	assert.Equal(t, []string{"Diners", "Breakfast & Brunch"}, info.Cuisines)
	assert.Equal(t, 1234.5, info.ProviderDistance)
}

func TestYelpNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"businesses": []}`))
	}))
	defer server.Close()

	client := NewYelpClient("secret", server.URL, time.Second, logger.NewTest())
	info, err := client.Lookup(context.Background(), "Nowhere", geo.Coordinate{})
	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestYelpRequiresName(t *testing.T) {
	client := NewYelpClient("secret", "http://127.0.0.1:0", time.Second, logger.NewTest())
	_, err := client.Lookup(context.Background(), "  ", geo.Coordinate{})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}
