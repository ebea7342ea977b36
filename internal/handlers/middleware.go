package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"poi-finder/internal/kafka"
	"poi-finder/internal/logger"
)

// HeaderCorrelationID - заголовок HTTP-запроса с correlation_id
const HeaderCorrelationID = "X-Correlation-ID"

// CORSMiddleware разрешает кросс-доменные запросы
func CORSMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+HeaderCorrelationID)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// CorrelationMiddleware прокидывает correlation_id в контекст запроса и логирует запрос
func CorrelationMiddleware(log *logger.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(HeaderCorrelationID)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}
		w.Header().Set(HeaderCorrelationID, correlationID)

		start := time.Now()
		next(w, r.WithContext(kafka.WithCorrelationID(r.Context(), correlationID)))

		log.WithFields(map[string]interface{}{
			"method":         r.Method,
			"path":           r.URL.Path,
			"correlation_id": correlationID,
			"duration_ms":    time.Since(start).Milliseconds(),
		}).Info("Request handled")
	}
}
