package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"poi-finder/internal/geo"
)

// ErrInvalidRequest возвращается при некорректных параметрах поиска
var ErrInvalidRequest = errors.New("invalid search request")

// SearchMode определяет способ расчёта расстояния
type SearchMode string

const (
	SearchModeRoute  SearchMode = "route"
	SearchModeMeetup SearchMode = "meetup"
)

// Category - категория мест поставщика
type Category string

const (
	CategoryRestaurant Category = "catering.restaurant"
	CategoryCafe       Category = "catering.cafe"
	CategoryFastFood   Category = "catering.fast_food"
	CategoryBar        Category = "catering.bar"
	CategoryPub        Category = "catering.pub"
	CategoryIceCream   Category = "catering.ice_cream"
	CategoryAttraction Category = "tourism.attraction"
	CategorySights     Category = "tourism.sights"
	CategoryMuseum     Category = "entertainment.museum"
	CategoryPark       Category = "leisure.park"
)

// DefaultCategory подставляется вместо нераспознанной категории
const DefaultCategory = CategoryRestaurant

var knownCategories = map[Category]struct{}{
	CategoryRestaurant: {},
	CategoryCafe:       {},
	CategoryFastFood:   {},
	CategoryBar:        {},
	CategoryPub:        {},
	CategoryIceCream:   {},
	CategoryAttraction: {},
	CategorySights:     {},
	CategoryMuseum:     {},
	CategoryPark:       {},
}

// ParseCategory сопоставляет строку с известной категорией.
// Неизвестное значение не считается ошибкой: возвращается DefaultCategory и ok=false
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := knownCategories[c]; ok {
		return c, true
	}
	return DefaultCategory, false
}

// SearchRequest - параметры одного поиска
type SearchRequest struct {
	Origin         geo.Coordinate `json:"origin"`
	Category       string         `json:"category"`
	RadiusMiles    float64        `json:"radius_miles"`
	Limit          int            `json:"limit"`
	DistanceOrigin geo.Coordinate `json:"distance_origin"`
	Mode           SearchMode     `json:"mode"`
	Route          geo.Polyline   `json:"route,omitempty"`
}

// Validate проверяет запрос до обращения к поставщикам
func (r *SearchRequest) Validate() error {
	if err := r.Origin.Validate(); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	if math.IsNaN(r.RadiusMiles) || math.IsInf(r.RadiusMiles, 0) {
		return fmt.Errorf("%w: radius must be finite", ErrInvalidRequest)
	}
	if r.RadiusMiles <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrInvalidRequest)
	}
	if r.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidRequest)
	}

	switch r.Mode {
	case SearchModeMeetup:
		if err := r.DistanceOrigin.Validate(); err != nil {
			return fmt.Errorf("distance origin: %w", err)
		}
	case SearchModeRoute:
		if err := r.Route.Validate(); err != nil {
			return fmt.Errorf("route: %w", err)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, r.Mode)
	}

	return nil
}
