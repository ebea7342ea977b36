package models

// CacheMetricsResponse - структура JSON-ответа статистики кеша
type CacheMetricsResponse struct {
	Backend   string  `json:"backend"`
	HitRate   float64 `json:"hit_rate"`
	MissRate  float64 `json:"miss_rate"`
	CacheSize int64   `json:"cache_size"`
}

// KafkaTopicMetricsResponse - структура JSON-ответа статистики топика Kafka
type KafkaTopicMetricsResponse struct {
	Topic                string `json:"topic"`
	TotalPublishedEvents uint64 `json:"total_published_events"`
	Errors               uint64 `json:"errors"`
	AvgPublishDuration   string `json:"avg_publish_duration"`
}

// KafkaMetricsResponse - структура JSON-ответа общей статистики Kafka
type KafkaMetricsResponse struct {
	Statistics []KafkaTopicMetricsResponse `json:"statistics"`
}
