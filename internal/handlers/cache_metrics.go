package handlers

import (
	"net/http"

	"poi-finder/internal/logger"
	"poi-finder/internal/services"
)

// CacheMetricsHandler - хендлер для статистики по кешу
type CacheMetricsHandler struct {
	cacheService services.CacheServiceInterface
	log          *logger.Logger
}

// NewCacheMetricsHandler возвращает ссылку на экземпляр CacheMetricsHandler
func NewCacheMetricsHandler(cacheService services.CacheServiceInterface, log *logger.Logger) *CacheMetricsHandler {
	return &CacheMetricsHandler{cacheService: cacheService, log: log}
}

// GetStatistics получает статистику кеша
func (h *CacheMetricsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	metricsPtr, err := h.cacheService.GetStatistics(r.Context())
	if err != nil {
		h.log.WithError(err).Error("Failed getting statistics")
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, metricsPtr)
}
