package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate возвращается для координат вне допустимого диапазона или с NaN
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate - точка в градусах (WGS84)
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Polyline - упорядоченная последовательность точек маршрута
type Polyline []Coordinate

// Validate проверяет, что координата не содержит NaN и лежит в допустимых границах
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return fmt.Errorf("%w: NaN value", ErrInvalidCoordinate)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %f out of range", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: longitude %f out of range", ErrInvalidCoordinate, c.Lng)
	}
	return nil
}

// String возвращает координату в виде "lat,lng"
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// Validate проверяет длину маршрута и каждую его точку
func (p Polyline) Validate() error {
	if len(p) < 2 {
		return fmt.Errorf("%w: route must contain at least 2 points, got %d", ErrInvalidCoordinate, len(p))
	}
	for i, c := range p {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("route point %d: %w", i, err)
		}
	}
	return nil
}

// ParseLatLng разбирает строку вида "40.1,-75.2"
func ParseLatLng(s string) (Coordinate, error) {
	var c Coordinate
	if _, err := fmt.Sscanf(s, "%f,%f", &c.Lat, &c.Lng); err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}
