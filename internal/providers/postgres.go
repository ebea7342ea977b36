package providers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"poi-finder/internal/database"
	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

// PlacesSchema - таблица локального каталога мест
const PlacesSchema = `
	CREATE TABLE IF NOT EXISTS places (
		id            TEXT PRIMARY KEY,
		name          TEXT,
		latitude      DOUBLE PRECISION,
		longitude     DOUBLE PRECISION,
		address_line1 TEXT NOT NULL DEFAULT '',
		address_line2 TEXT NOT NULL DEFAULT '',
		categories    TEXT[] NOT NULL DEFAULT '{}',
		website       TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS places_categories_idx ON places USING GIN (categories);
`

// PostgresPlaces - поставщик мест из собственного каталога в Postgres
type PostgresPlaces struct {
	db  *database.DB
	log *logger.Logger
}

// NewPostgresPlaces создаёт поставщика мест поверх подключения к БД
func NewPostgresPlaces(db *database.DB, log *logger.Logger) *PostgresPlaces {
	return &PostgresPlaces{db: db, log: log}
}

// EnsureSchema создаёт таблицу каталога, если её нет
func (p *PostgresPlaces) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, PlacesSchema); err != nil {
		return fmt.Errorf("failed to create places schema: %w", err)
	}
	return nil
}

// Search выбирает места категории в радиусе, расстояние считается в SQL по формуле гаверсинусов
func (p *PostgresPlaces) Search(ctx context.Context, center geo.Coordinate, radiusMeters float64, category models.Category, limit int) ([]models.PlaceFeature, error) {
	query := `
		SELECT id, name, latitude, longitude, address_line1, address_line2, categories, website
		FROM (
			SELECT *, (6371000 * acos(LEAST(1.0,
				cos(radians($1)) * cos(radians(latitude)) * cos(radians(longitude) - radians($2)) +
				sin(radians($1)) * sin(radians(latitude))))) AS distance
			FROM places
			WHERE categories && $3
		) AS candidates
		WHERE distance <= $4
		ORDER BY distance
		LIMIT $5
	`

	rows, err := p.db.QueryContext(ctx, query, center.Lat, center.Lng, pq.Array([]string{string(category)}), radiusMeters, limit)
	if err != nil {
		p.log.WithError(err).Error("Failed to query places")
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var features []models.PlaceFeature
	for rows.Next() {
		var row placeRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Lat, &row.Lng, &row.AddressLine1,
			&row.AddressLine2, &row.Categories, &row.Website); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		features = append(features, row.feature())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate places: %w", err)
	}

	return features, nil
}

type placeRow struct {
	ID           string
	Name         sql.NullString
	Lat          sql.NullFloat64
	Lng          sql.NullFloat64
	AddressLine1 string
	AddressLine2 string
	Categories   pq.StringArray
	Website      string
}

func (r placeRow) feature() models.PlaceFeature {
	f := models.PlaceFeature{
		ID:           r.ID,
		Name:         r.Name.String,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Categories:   []string(r.Categories),
		Website:      r.Website,
	}
	if r.Lat.Valid && r.Lng.Valid {
		f.Location = &geo.Coordinate{Lat: r.Lat.Float64, Lng: r.Lng.Float64}
	}
	return f
}
