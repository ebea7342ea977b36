package handlers

import (
	"net/http"

	"poi-finder/internal/logger"
	"poi-finder/internal/services"
)

type KafkaMetricsHandler struct {
	metricsService services.KafkaMetricsServiceInterface
	log            *logger.Logger
}

func NewKafkaMetricsHandler(metricsService services.KafkaMetricsServiceInterface, log *logger.Logger) *KafkaMetricsHandler {
	return &KafkaMetricsHandler{
		metricsService: metricsService,
		log:            log,
	}
}

func (h *KafkaMetricsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	data := h.metricsService.GetStatistics()
	h.log.Debug("Kafka metrics obtained successfully")
	writeJSONResponse(w, http.StatusOK, data)
}
