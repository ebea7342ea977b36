package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

// Enricher дополняет кандидатов данными поставщика рейтингов
type Enricher struct {
	ratings        RatingsProvider
	maxConcurrency int
	log            *logger.Logger
}

// NewEnricher создаёт Enricher. Без поставщика рейтингов все места получают значения по умолчанию
func NewEnricher(ratings RatingsProvider, maxConcurrency int, log *logger.Logger) *Enricher {
	return &Enricher{ratings: ratings, maxConcurrency: maxConcurrency, log: log}
}

/*
Enrich запрашивает рейтинг каждого кандидата параллельно, сохраняя порядок.
Ошибка или отсутствие совпадения дают значения по умолчанию.
Расстояние всегда берётся у кандидата.
*/
func (e *Enricher) Enrich(ctx context.Context, candidates []models.Candidate) []models.EnrichedPlace {
	enriched := make([]models.EnrichedPlace, len(candidates))

	var g errgroup.Group
	if e.maxConcurrency > 0 {
		g.SetLimit(e.maxConcurrency)
	}
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			enriched[i] = merge(c, e.lookup(ctx, c))
			return nil
		})
	}
	_ = g.Wait()

	return enriched
}

func (e *Enricher) lookup(ctx context.Context, c models.Candidate) *models.RatingInfo {
	if e.ratings == nil || c.Location == nil {
		return nil
	}

	info, err := e.ratings.Lookup(ctx, c.Name, *c.Location)
	if err != nil {
		e.log.WithError(err).WithFields(map[string]interface{}{
			"id":   c.ID,
			"name": c.Name,
		}).Warn("Ratings lookup failed")
		return nil
	}
	return info
}

// merge собирает итоговую запись. info == nil означает отсутствие данных о рейтинге
func merge(c models.Candidate, info *models.RatingInfo) models.EnrichedPlace {
	place := models.EnrichedPlace{
		ID:         c.ID,
		Name:       c.Name,
		Location:   c.Location,
		Categories: c.Categories,
		Distance:   c.Distance,
		Website:    c.Website,
		Address:    c.FormattedAddress(),
		Cuisines:   []string{},
	}
	if info == nil {
		return place
	}

	place.Rating = info.Rating
	place.ReviewCount = info.ReviewCount
	place.Price = info.Price
	place.Phone = info.Phone
	place.IsClosed = info.IsClosed
	place.RatingsID = info.ID
	if info.Website != "" {
		place.Website = info.Website
	}
	if info.Address != "" {
		place.Address = info.Address
	}
	if len(info.Cuisines) > 0 {
		place.Cuisines = info.Cuisines
	}

	return place
}
