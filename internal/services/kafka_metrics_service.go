package services

import (
	"poi-finder/internal/kafka"
	"poi-finder/internal/models"
)

type KafkaMetricsService struct {
	metrics *kafka.Metrics
}

func NewKafkaMetricsService(metrics *kafka.Metrics) *KafkaMetricsService {
	return &KafkaMetricsService{metrics: metrics}
}

func (s *KafkaMetricsService) GetStatistics() *models.KafkaMetricsResponse {
	if s.metrics == nil {
		return &models.KafkaMetricsResponse{Statistics: []models.KafkaTopicMetricsResponse{}}
	}
	return s.metrics.GetStatistics()
}
