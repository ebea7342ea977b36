package services

import (
	"sort"

	"poi-finder/internal/models"
)

// Score = 2*rating - расстояние в милях
func Score(p models.EnrichedPlace) float64 {
	return 2*p.Rating - ParseMiles(p.Distance)
}

type scoredPlace struct {
	place models.EnrichedPlace
	score float64
}

// Rank сортирует места по убыванию Score (равные сохраняют порядок) и только потом обрезает до limit
func Rank(places []models.EnrichedPlace, limit int) models.RankedResult {
	scored := make([]scoredPlace, len(places))
	for i, p := range places {
		scored[i] = scoredPlace{place: p, score: Score(p)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	result := make(models.RankedResult, len(scored))
	for i, s := range scored {
		result[i] = s.place
	}
	return result
}
