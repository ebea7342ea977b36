package services

import (
	"context"

	"poi-finder/internal/cache"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

// CacheService - сервис для работы с метриками кеша
type CacheService struct {
	cache cache.Cache
	log   *logger.Logger
}

// NewCacheService возвращает ссылку на экземпляр CacheService
func NewCacheService(c cache.Cache, log *logger.Logger) *CacheService {
	return &CacheService{cache: c, log: log}
}

// GetStatistics возвращает статистику по кешу (hit_rate, miss_rate, cache_size)
func (s *CacheService) GetStatistics(ctx context.Context) (*models.CacheMetricsResponse, error) {
	if s.cache == nil {
		return &models.CacheMetricsResponse{Backend: "none"}, nil
	}

	hits, misses, cacheSize, err := s.cache.GetMetrics(ctx)
	if err != nil {
		s.log.WithError(err).Error("error getting metrics")
	}
	total := hits + misses

	hitRate := 0.0
	missRate := 0.0
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
		missRate = float64(misses) / float64(total) * 100
	}
	return &models.CacheMetricsResponse{
		Backend:   s.cache.Backend(),
		HitRate:   hitRate,
		MissRate:  missRate,
		CacheSize: cacheSize,
	}, nil
}
