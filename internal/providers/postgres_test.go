package providers

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"poi-finder/internal/geo"
)

func TestPlaceRowFeature(t *testing.T) {
	row := placeRow{
		ID:         "pg-1",
		Name:       sql.NullString{String: "Corner Pub", Valid: true},
		Lat:        sql.NullFloat64{Float64: 40.1, Valid: true},
		Lng:        sql.NullFloat64{Float64: -75.1, Valid: true},
		Categories: pq.StringArray{"catering.pub"},
	}

	f := row.feature()
	assert.Equal(t, "pg-1", f.ID)
	assert.Equal(t, "Corner Pub", f.Name)
	assert.Equal(t, &geo.Coordinate{Lat: 40.1, Lng: -75.1}, f.Location)
	assert.Equal(t, []string{"catering.pub"}, f.Categories)

	row.Lng = sql.NullFloat64{}
	row.Name = sql.NullString{}
	f = row.feature()
	assert.Nil(t, f.Location)
	assert.Empty(t, f.Name)
}
