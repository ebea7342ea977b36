package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCoverageSmallRadius(t *testing.T) {
	origin := Coordinate{Lat: 40, Lng: -75}

	points := PlanCoverage(origin, 1, CoverageOptions{})
	require.Len(t, points, 1)
	assert.Equal(t, origin, points[0].Center)
	assert.Equal(t, DefaultProviderMaxMeters, points[0].RadiusMeters)

	points = PlanCoverage(origin, 1, CoverageOptions{ProviderMaxMeters: 3000})
	require.Len(t, points, 1)
	assert.Equal(t, 3000.0, points[0].RadiusMeters)
}

func TestPlanCoverageNonFiniteRadius(t *testing.T) {
	origin := Coordinate{Lat: 40, Lng: -75}

	assert.Empty(t, PlanCoverage(origin, math.NaN(), CoverageOptions{}))
	assert.Empty(t, PlanCoverage(origin, math.Inf(1), CoverageOptions{}))
	assert.Empty(t, PlanCoverage(origin, math.Inf(-1), CoverageOptions{}))
}

func TestPlanCoverageGrid(t *testing.T) {
	origin := Coordinate{Lat: 40, Lng: -75}

	points := PlanCoverage(origin, 10, CoverageOptions{ProviderMaxMeters: 5000})

	// ceil(16093.44 / 5000) = 4, сетка 9x9
	require.Len(t, points, 81)
	assert.Equal(t, origin, points[0].Center)

	seen := make(map[Coordinate]bool, len(points))
	for _, p := range points {
		assert.False(t, seen[p.Center], "duplicate coverage point %v", p.Center)
		seen[p.Center] = true
		assert.Equal(t, 5000.0, p.RadiusMeters)
	}
	assert.True(t, seen[Coordinate{Lat: 40 + 4*DefaultGridStepDegrees, Lng: -75 - 4*DefaultGridStepDegrees}])
}

func TestPlanCoverageSkipsPolarOverflow(t *testing.T) {
	points := PlanCoverage(Coordinate{Lat: 89.97, Lng: 0}, 4, CoverageOptions{})
	for _, p := range points {
		assert.NoError(t, p.Center.Validate())
	}
	assert.Greater(t, len(points), 1)
}

func TestPlanRouteCoverage(t *testing.T) {
	line := Polyline{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.5}, {Lat: 0, Lng: 1}}
	opts := CoverageOptions{ProviderMaxMeters: 5000}

	points := PlanRouteCoverage(line, opts)

	assert.Equal(t, line[0], points[0].Center)
	assert.Equal(t, line[2], points[len(points)-1].Center)

	// ~69 миль с шагом ~6.2 мили
	assert.Len(t, points, 13)

	spacing := 2 * opts.ProviderMaxMeters / MetersPerMile
	for i := 1; i < len(points)-1; i++ {
		assert.InDelta(t, spacing, Haversine(points[i-1].Center, points[i].Center), 0.01)
	}
	assert.Nil(t, PlanRouteCoverage(nil, opts))
}
