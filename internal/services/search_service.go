package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"poi-finder/internal/config"
	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

/*
SearchService - конвейер поиска мест:
покрытие -> агрегация -> расстояния -> рейтинги -> ранжирование.
Ошибки поставщиков до вызывающего не доходят, наружу возвращаются только ошибки валидации.
*/
type SearchService struct {
	aggregator *Aggregator
	enricher   *Enricher
	publisher  EventPublisher
	coverage   geo.CoverageOptions
	maxRadius  float64
	log        *logger.Logger
}

// NewSearchService создаёт SearchService. ratings и publisher могут быть nil
func NewSearchService(cfg *config.SearchConfig, places PlacesProvider, ratings RatingsProvider, publisher EventPublisher, log *logger.Logger) *SearchService {
	return &SearchService{
		aggregator: NewAggregator(places, cfg.ProviderLimit, cfg.MaxConcurrency, log),
		enricher:   NewEnricher(ratings, cfg.MaxConcurrency, log),
		publisher:  publisher,
		coverage: geo.CoverageOptions{
			ProviderMaxMeters: cfg.ProviderMaxMeters,
			GridStepDegrees:   cfg.GridStepDegrees,
		},
		maxRadius: cfg.MaxRadiusMiles,
		log:       log,
	}
}

// Search ищет места в радиусе от req.Origin
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (models.RankedResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	points := geo.PlanCoverage(req.Origin, req.RadiusMiles, s.coverage)
	return s.run(ctx, req, points), nil
}

// SearchAlongRoute ищет места в коридоре вдоль всего маршрута. Ширина коридора равна радиусу одного запроса к поставщику
func (s *SearchService) SearchAlongRoute(ctx context.Context, req models.SearchRequest) (models.RankedResult, error) {
	if req.Mode != models.SearchModeRoute {
		return nil, fmt.Errorf("%w: route search requires mode %q", models.ErrInvalidRequest, models.SearchModeRoute)
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	points := geo.PlanRouteCoverage(req.Route, s.coverage)
	return s.run(ctx, req, points), nil
}

// validate дополняет проверки запроса верхней границей радиуса, иначе сетка покрытия не ограничена
func (s *SearchService) validate(req models.SearchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if s.maxRadius > 0 && req.RadiusMiles > s.maxRadius {
		return fmt.Errorf("%w: radius %.1f exceeds maximum %.1f miles", models.ErrInvalidRequest, req.RadiusMiles, s.maxRadius)
	}
	return nil
}

func (s *SearchService) run(ctx context.Context, req models.SearchRequest, points []geo.CoveragePoint) models.RankedResult {
	start := time.Now()

	category, ok := models.ParseCategory(req.Category)
	if !ok {
		s.log.WithFields(map[string]interface{}{
			"requested": req.Category,
			"used":      category,
		}).Debug("Unknown category, falling back to default")
	}

	candidates := s.aggregator.Aggregate(ctx, points, category)
	candidates = Annotate(candidates, req.Mode, req.DistanceOrigin, req.Route)
	enriched := s.enricher.Enrich(ctx, candidates)
	result := Rank(enriched, req.Limit)

	s.log.WithFields(map[string]interface{}{
		"mode":            req.Mode,
		"category":        category,
		"coverage_points": len(points),
		"candidates":      len(candidates),
		"results":         len(result),
	}).Info("Search completed")

	s.publish(ctx, &models.SearchEvent{
		ID:             uuid.New(),
		Type:           models.EventTypeSearchCompleted,
		Mode:           req.Mode,
		Category:       category,
		Origin:         req.Origin,
		RadiusMiles:    req.RadiusMiles,
		CoveragePoints: len(points),
		Candidates:     len(candidates),
		Results:        len(result),
		DurationMs:     time.Since(start).Milliseconds(),
		CreatedAt:      time.Now().UTC(),
	})

	return result
}

// publish отправляет событие, ошибка публикации на результат поиска не влияет
func (s *SearchService) publish(ctx context.Context, event *models.SearchEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSearchCompleted(ctx, event); err != nil {
		s.log.WithError(err).WithField("event_id", event.ID).Warn("Failed to publish search event")
	}
}
