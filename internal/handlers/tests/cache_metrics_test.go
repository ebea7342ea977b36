package handler_tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/mock"

	"poi-finder/internal/handlers"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
	"poi-finder/internal/services/services_mocks"
)

var getCacheMetricsTestCases = []struct {
	name               string
	returnedValue      *models.CacheMetricsResponse
	returnedError      error
	expectedStatusCode int
}{
	{"test_ok", cacheMetrics, nil, http.StatusOK},
	{"test_server_error", nil, errorInternalServerError, http.StatusInternalServerError},
}

// TestCacheGetStatistics выполняет тестирование на получение метрик кеша
func TestCacheGetStatistics(t *testing.T) {
	for _, tc := range getCacheMetricsTestCases {
		mockCache := services_mocks.NewMockCacheServiceInterface(t)
		discardLogger := logger.NewTest()

		h := handlers.NewCacheMetricsHandler(mockCache, discardLogger)
		mux := setupTestCacheMetricsRoute(h)

		server := httptest.NewServer(mux)

		e := httpexpect.Default(t, server.URL)
		mockCache.On("GetStatistics", mock.Anything).
			Return(tc.returnedValue, tc.returnedError)

		obj := e.GET("/api/cache/metrics").Expect().Status(tc.expectedStatusCode).JSON().Object()
		if tc.expectedStatusCode == http.StatusOK {
			obj.Value("backend").String().IsEqual(tc.returnedValue.Backend)
			obj.Value("hit_rate").Number().IsEqual(tc.returnedValue.HitRate)
			obj.Value("miss_rate").Number().IsEqual(tc.returnedValue.MissRate)
			obj.Value("cache_size").Number().IsEqual(tc.returnedValue.CacheSize)
		}
		mockCache.AssertExpectations(t)
		server.Close()
	}
}
