package models

import (
	"strings"

	"poi-finder/internal/geo"
)

// PlaceFeature - сырая запись поставщика мест. Location может отсутствовать у битых записей
type PlaceFeature struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     *geo.Coordinate `json:"location"`
	AddressLine1 string          `json:"address_line1,omitempty"`
	AddressLine2 string          `json:"address_line2,omitempty"`
	Categories   []string        `json:"categories,omitempty"`
	Website      string          `json:"website,omitempty"`
}

// Candidate - уникальное место после агрегации. Distance присваивается один раз
type Candidate struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     *geo.Coordinate `json:"location,omitempty"`
	AddressLine1 string          `json:"address_line1,omitempty"`
	AddressLine2 string          `json:"address_line2,omitempty"`
	Categories   []string        `json:"categories,omitempty"`
	Website      string          `json:"website,omitempty"`
	Distance     string          `json:"distance,omitempty"`
}

// NewCandidate создаёт кандидата из записи поставщика
func NewCandidate(f PlaceFeature) Candidate {
	return Candidate{
		ID:           f.ID,
		Name:         f.Name,
		Location:     f.Location,
		AddressLine1: f.AddressLine1,
		AddressLine2: f.AddressLine2,
		Categories:   f.Categories,
		Website:      f.Website,
	}
}

// FormattedAddress склеивает непустые фрагменты адреса
func (c Candidate) FormattedAddress() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{c.AddressLine1, c.AddressLine2} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// EnrichedPlace - кандидат с данными о рейтинге.
// Distance всегда берётся у кандидата, данные поставщика рейтингов его не перезаписывают
type EnrichedPlace struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    *geo.Coordinate `json:"location,omitempty"`
	Categories  []string        `json:"categories,omitempty"`
	Distance    string          `json:"distance"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	Price       string          `json:"price"`
	Website     string          `json:"website"`
	Phone       string          `json:"phone,omitempty"`
	Address     string          `json:"address"`
	Cuisines    []string        `json:"cuisines"`
	IsClosed    bool            `json:"is_closed"`
	RatingsID   string          `json:"ratings_id,omitempty"`
}

// RankedResult - итоговый отсортированный список мест
type RankedResult []EnrichedPlace
