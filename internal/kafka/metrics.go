package kafka

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"poi-finder/internal/models"
)

// TopicMetrics - метрики публикации в конкретный топик
type TopicMetrics struct {
	TotalPublishedEvents  atomic.Uint64
	Errors                atomic.Uint64
	TotalPublishDurations atomic.Uint64
}

// Metrics - метрики Kafka Producer в разрезе топиков
type Metrics struct {
	mux        sync.RWMutex
	Statistics map[string]*TopicMetrics
}

func NewMetrics() *Metrics {
	return &Metrics{
		Statistics: make(map[string]*TopicMetrics),
	}
}

// RecordEvent учитывает одну попытку публикации длительностью duration мс
func (m *Metrics) RecordEvent(topic string, duration int64, hasError bool) {
	m.mux.Lock()
	defer m.mux.Unlock()

	if _, exists := m.Statistics[topic]; !exists {
		m.Statistics[topic] = &TopicMetrics{}
	}

	topicMetrics := m.Statistics[topic]
	topicMetrics.TotalPublishedEvents.Add(1)
	if duration > 0 {
		topicMetrics.TotalPublishDurations.Add(uint64(duration))
	}

	if hasError {
		topicMetrics.Errors.Add(1)
	}
}

func (m *Metrics) GetStatistics() *models.KafkaMetricsResponse {
	m.mux.RLock()
	defer m.mux.RUnlock()

	stats := &models.KafkaMetricsResponse{
		Statistics: make([]models.KafkaTopicMetricsResponse, 0, len(m.Statistics)),
	}

	for topic, metrics := range m.Statistics {
		totalEvents := metrics.TotalPublishedEvents.Load()
		totalDuration := metrics.TotalPublishDurations.Load()

		// Среднее время публикации
		avg := "0 ms"
		if totalEvents > 0 {
			avg = fmt.Sprintf("%d ms", totalDuration/totalEvents)
		}

		stats.Statistics = append(stats.Statistics, models.KafkaTopicMetricsResponse{
			Topic:                topic,
			TotalPublishedEvents: totalEvents,
			Errors:               metrics.Errors.Load(),
			AvgPublishDuration:   avg,
		})
	}

	sort.Slice(stats.Statistics, func(i, j int) bool {
		return stats.Statistics[i].Topic < stats.Statistics[j].Topic
	})

	return stats
}
