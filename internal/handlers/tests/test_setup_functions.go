package handler_tests

import (
	"net/http"

	"poi-finder/internal/handlers"
)

func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// setupTestSearchRoutes настраивает HTTP-маршруты поиска
func setupTestSearchRoutes(h *handlers.SearchHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/search", corsMiddleware(h.Search))
	mux.HandleFunc("/api/search/meetup", corsMiddleware(h.Meetup))
	mux.HandleFunc("/api/search/route", corsMiddleware(h.Route))

	return mux
}

// setupTestKafkaMetricsRoute настраивает HTTP-маршрут для функционала получения статистики Kafka
func setupTestKafkaMetricsRoute(h *handlers.KafkaMetricsHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/kafka/stats", corsMiddleware(h.GetStatistics))

	return mux
}

// setupTestCacheMetricsRoute настраивает HTTP-маршрут для функционала получения статистики кеша
func setupTestCacheMetricsRoute(h *handlers.CacheMetricsHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/cache/metrics", corsMiddleware(h.GetStatistics))

	return mux
}

// setupTestHealthRoute настраивает HTTP-маршрут проверки состояния
func setupTestHealthRoute(h *handlers.HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.Health)

	return mux
}
