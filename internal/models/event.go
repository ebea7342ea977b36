package models

import (
	"time"

	"github.com/google/uuid"

	"poi-finder/internal/geo"
)

// EventType - тип события аналитики
type EventType string

const EventTypeSearchCompleted EventType = "search.completed"

// SearchEvent - событие о выполненном поиске
type SearchEvent struct {
	ID             uuid.UUID      `json:"id"`
	Type           EventType      `json:"type"`
	Mode           SearchMode     `json:"mode"`
	Category       Category       `json:"category"`
	Origin         geo.Coordinate `json:"origin"`
	RadiusMiles    float64        `json:"radius_miles"`
	CoveragePoints int            `json:"coverage_points"`
	Candidates     int            `json:"candidates"`
	Results        int            `json:"results"`
	DurationMs     int64          `json:"duration_ms"`
	CreatedAt      time.Time      `json:"created_at"`
}
