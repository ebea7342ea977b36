package services

import (
	"fmt"
	"strconv"
	"strings"

	"poi-finder/internal/geo"
	"poi-finder/internal/models"
)

const milesSuffix = " mi"

// FormatMiles форматирует расстояние с одним знаком после запятой: "1.5 mi"
func FormatMiles(miles float64) string {
	return fmt.Sprintf("%.1f%s", miles, milesSuffix)
}

// ParseMiles разбирает строку из FormatMiles. Нераспознанная строка даёт 0
func ParseMiles(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "mi")), 64)
	if err != nil {
		return 0
	}
	return v
}

/*
Annotate присваивает каждому кандидату расстояние:
в режиме route - вдоль маршрута до ближайшей точки, в режиме meetup - по прямой от distanceOrigin.
Кандидаты без координат остаются без расстояния.
*/
func Annotate(candidates []models.Candidate, mode models.SearchMode, distanceOrigin geo.Coordinate, route geo.Polyline) []models.Candidate {
	for i := range candidates {
		c := &candidates[i]
		if c.Location == nil {
			continue
		}

		var miles float64
		if mode == models.SearchModeRoute {
			miles = geo.RouteDistance(*c.Location, route)
		} else {
			miles = geo.Haversine(*c.Location, distanceOrigin)
		}
		c.Distance = FormatMiles(miles)
	}
	return candidates
}
