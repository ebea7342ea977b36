package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

// MaxProviderLimit - максимальное число мест в одном ответе поставщика
const MaxProviderLimit = 50

// Aggregator опрашивает поставщика мест по всем точкам покрытия и сводит ответы
type Aggregator struct {
	places         PlacesProvider
	providerLimit  int
	maxConcurrency int
	log            *logger.Logger
}

// NewAggregator создаёт агрегатор. maxConcurrency = 0 снимает ограничение параллельности
func NewAggregator(places PlacesProvider, providerLimit, maxConcurrency int, log *logger.Logger) *Aggregator {
	if providerLimit <= 0 || providerLimit > MaxProviderLimit {
		providerLimit = MaxProviderLimit
	}
	return &Aggregator{
		places:         places,
		providerLimit:  providerLimit,
		maxConcurrency: maxConcurrency,
		log:            log,
	}
}

/*
Aggregate выполняет по одному запросу на точку покрытия параллельно.
Ошибка отдельного запроса превращается в пустой ответ. Результаты склеиваются в порядке точек,
повтор по ID отбрасывается (побеждает первый), записи без ID, названия или координат пропускаются.
*/
func (a *Aggregator) Aggregate(ctx context.Context, points []geo.CoveragePoint, category models.Category) []models.Candidate {
	responses := make([][]models.PlaceFeature, len(points))

	var g errgroup.Group
	if a.maxConcurrency > 0 {
		g.SetLimit(a.maxConcurrency)
	}
	for i, point := range points {
		i, point := i, point
		g.Go(func() error {
			features, err := a.places.Search(ctx, point.Center, point.RadiusMeters, category, a.providerLimit)
			if err != nil {
				a.log.WithError(err).WithFields(map[string]interface{}{
					"center":   point.Center.String(),
					"radius":   point.RadiusMeters,
					"category": category,
				}).Warn("Places search failed for coverage point")
				return nil
			}
			responses[i] = features
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{})
	candidates := make([]models.Candidate, 0)
	for _, features := range responses {
		for _, f := range features {
			if f.ID == "" || f.Name == "" || f.Location == nil {
				continue
			}
			if _, ok := seen[f.ID]; ok {
				continue
			}
			seen[f.ID] = struct{}{}
			candidates = append(candidates, models.NewCandidate(f))
		}
	}

	return candidates
}
