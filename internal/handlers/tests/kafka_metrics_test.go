package handler_tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"

	"poi-finder/internal/handlers"
	"poi-finder/internal/logger"
	"poi-finder/internal/services/services_mocks"
)

// TestKafkaGetStatistics выполняет тестирование на получение метрик Kafka
func TestKafkaGetStatistics(t *testing.T) {
	mockKafkaMetrics := services_mocks.NewMockKafkaMetricsServiceInterface(t)
	discardLogger := logger.NewTest()

	mockKafkaMetrics.On("GetStatistics").Return(kafkaMetrics)

	h := handlers.NewKafkaMetricsHandler(mockKafkaMetrics, discardLogger)
	mux := setupTestKafkaMetricsRoute(h)

	server := httptest.NewServer(mux)
	defer server.Close()

	e := httpexpect.Default(t, server.URL)
	obj := e.GET("/api/kafka/stats").Expect().Status(http.StatusOK).JSON().Object()
	for i, array := range obj.Value("statistics").Array().Iter() {
		topicStats := kafkaMetrics.Statistics[i]
		array.Object().Value("topic").IsEqual(topicStats.Topic)
		array.Object().Value("total_published_events").IsEqual(topicStats.TotalPublishedEvents)
		array.Object().Value("errors").IsEqual(topicStats.Errors)
		array.Object().Value("avg_publish_duration").IsEqual(topicStats.AvgPublishDuration)
	}

	e.POST("/api/kafka/stats").Expect().Status(http.StatusMethodNotAllowed)
	mockKafkaMetrics.AssertExpectations(t)
}
