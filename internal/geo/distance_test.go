package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var philadelphia = Coordinate{Lat: 39.9526, Lng: -75.1652}
var newYork = Coordinate{Lat: 40.7128, Lng: -74.0060}

func TestHaversineSymmetryAndZero(t *testing.T) {
	pairs := []struct {
		a, b Coordinate
	}{
		{philadelphia, newYork},
		{Coordinate{Lat: 0, Lng: 0}, Coordinate{Lat: 0, Lng: 1}},
		{Coordinate{Lat: -33.8688, Lng: 151.2093}, Coordinate{Lat: 51.5074, Lng: -0.1278}},
		{Coordinate{Lat: 89.9, Lng: 179.9}, Coordinate{Lat: -89.9, Lng: -179.9}},
	}

	for _, p := range pairs {
		assert.Equal(t, Haversine(p.a, p.b), Haversine(p.b, p.a))
		assert.Equal(t, 0.0, Haversine(p.a, p.a))
		assert.Equal(t, 0.0, Haversine(p.b, p.b))
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Филадельфия - Нью-Йорк около 80 миль
	assert.InDelta(t, 80.6, Haversine(philadelphia, newYork), 1.0)
	// Один градус долготы на экваторе
	assert.InDelta(t, 69.09, Haversine(Coordinate{}, Coordinate{Lng: 1}), 0.01)
}

func TestHaversineNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Haversine(Coordinate{Lat: math.NaN()}, newYork)))
}

func TestProjectOntoDegenerateSegment(t *testing.T) {
	start := Coordinate{Lat: 10, Lng: 20}
	for _, p := range []Coordinate{{}, {Lat: 11, Lng: 21}, {Lat: -45, Lng: 170}, start} {
		assert.Equal(t, start, ProjectOntoSegment(p, start, start))
	}
}

func TestProjectOntoSegment(t *testing.T) {
	start := Coordinate{Lat: 0, Lng: 0}
	end := Coordinate{Lat: 0, Lng: 10}

	testCases := []struct {
		name     string
		point    Coordinate
		expected Coordinate
	}{
		{"inside", Coordinate{Lat: 3, Lng: 4}, Coordinate{Lat: 0, Lng: 4}},
		{"before_start", Coordinate{Lat: 1, Lng: -5}, start},
		{"after_end", Coordinate{Lat: -1, Lng: 15}, end},
		{"on_segment", Coordinate{Lat: 0, Lng: 7}, Coordinate{Lat: 0, Lng: 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProjectOntoSegment(tc.point, start, end)
			assert.InDelta(t, tc.expected.Lat, got.Lat, 1e-12)
			assert.InDelta(t, tc.expected.Lng, got.Lng, 1e-12)
		})
	}
}

func TestNearestPointOnPolyline(t *testing.T) {
	line := Polyline{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}}

	nearest := NearestPointOnPolyline(Coordinate{Lat: 0.5, Lng: 1.2}, line)
	assert.Equal(t, 1, nearest.SegmentIndex)
	assert.InDelta(t, 0.5, nearest.Point.Lat, 1e-12)
	assert.InDelta(t, 1.0, nearest.Point.Lng, 1e-12)

	// Точка на общей вершине равноудалена от обоих сегментов - побеждает первый
	corner := NearestPointOnPolyline(Coordinate{Lat: 0, Lng: 1}, line)
	assert.Equal(t, 0, corner.SegmentIndex)
	assert.InDelta(t, 0, corner.Distance, 1e-9)
}

func TestNearestPointOnShortPolylines(t *testing.T) {
	empty := NearestPointOnPolyline(philadelphia, nil)
	assert.Equal(t, -1, empty.SegmentIndex)
	assert.True(t, math.IsInf(empty.Distance, 1))

	single := NearestPointOnPolyline(philadelphia, Polyline{newYork})
	assert.Equal(t, 0, single.SegmentIndex)
	assert.Equal(t, newYork, single.Point)
	assert.Equal(t, 0.0, RouteDistance(philadelphia, nil))
}

func TestRouteDistance(t *testing.T) {
	line := Polyline{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 0, Lng: 2}}
	first := Haversine(line[0], line[1])

	// Точка рядом со вторым сегментом: весь первый сегмент плюс часть второго
	got := RouteDistance(Coordinate{Lat: 0.01, Lng: 1.5}, line)
	assert.InDelta(t, first+Haversine(line[1], Coordinate{Lat: 0, Lng: 1.5}), got, 1e-9)

	assert.InDelta(t, 0, RouteDistance(Coordinate{Lat: -0.5, Lng: -0.5}, line), 1e-9)
	assert.InDelta(t, line.Length(), RouteDistance(Coordinate{Lat: 0, Lng: 3}, line), 1e-9)
}

func TestRouteDistanceMonotonicAtVertices(t *testing.T) {
	lines := []Polyline{
		{philadelphia, {Lat: 40.2, Lng: -74.8}, {Lat: 40.4, Lng: -74.5}, newYork},
		{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.1}, {Lat: 0.1, Lng: 0.1}, {Lat: 0.1, Lng: 0.3}, {Lat: 0.4, Lng: 0.3}},
		{{Lat: 51.5, Lng: -0.1}, {Lat: 51.5, Lng: -0.1}, {Lat: 51.6, Lng: 0.2}},
	}

	for _, line := range lines {
		prev := -1.0
		for _, vertex := range line {
			d := RouteDistance(vertex, line)
			assert.GreaterOrEqual(t, d, prev-1e-9)
			prev = d
		}
		assert.InDelta(t, line.Length(), prev, 1e-9)
	}
}

func TestMidpoint(t *testing.T) {
	mid := Midpoint(Coordinate{Lat: 0, Lng: 0}, Coordinate{Lat: 0, Lng: 10})
	assert.InDelta(t, 0, mid.Lat, 1e-9)
	assert.InDelta(t, 5, mid.Lng, 1e-9)

	m := Midpoint(philadelphia, newYork)
	assert.InDelta(t, Haversine(philadelphia, m), Haversine(m, newYork), 1e-6)

	antimeridian := Midpoint(Coordinate{Lat: 0, Lng: 179}, Coordinate{Lat: 0, Lng: -179})
	assert.InDelta(t, 180, math.Abs(antimeridian.Lng), 1e-9)
}

func TestCoordinateValidate(t *testing.T) {
	require.NoError(t, philadelphia.Validate())

	for _, c := range []Coordinate{
		{Lat: math.NaN(), Lng: 0},
		{Lat: 0, Lng: math.NaN()},
		{Lat: 91, Lng: 0},
		{Lat: 0, Lng: -180.5},
	} {
		assert.ErrorIs(t, c.Validate(), ErrInvalidCoordinate)
	}

	assert.ErrorIs(t, Polyline{philadelphia}.Validate(), ErrInvalidCoordinate)
	assert.ErrorIs(t, Polyline{philadelphia, {Lat: 100}}.Validate(), ErrInvalidCoordinate)
	assert.NoError(t, Polyline{philadelphia, newYork}.Validate())
}

func TestParseLatLng(t *testing.T) {
	c, err := ParseLatLng("40.5,-75.25")
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Lat: 40.5, Lng: -75.25}, c)

	_, err = ParseLatLng("Main street")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	_, err = ParseLatLng("95,10")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
