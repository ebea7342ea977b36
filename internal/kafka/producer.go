package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"poi-finder/internal/config"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

// Producer публикует события поиска в Kafka
type Producer struct {
	producer sarama.SyncProducer
	dlq      *DLQProducer
	topic    string
	metrics  *Metrics
	log      *logger.Logger
}

// NewProducer создаёт синхронный Kafka Producer по конфигурации
func NewProducer(cfg *config.KafkaConfig, log *logger.Logger, metrics *Metrics) (*Producer, error) {
	config := sarama.NewConfig()
	config.ClientID = cfg.ClientID
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		log.WithError(err).Error("failed to create Kafka producer")
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.WithField("topic", cfg.Topic).Info("Kafka producer created successfully")

	return NewProducerFromSync(producer, cfg.Topic, cfg.DLQTopic, log, metrics), nil
}

// NewProducerFromSync оборачивает готовый sarama.SyncProducer. Пустой dlqTopic отключает DLQ
func NewProducerFromSync(producer sarama.SyncProducer, topic, dlqTopic string, log *logger.Logger, metrics *Metrics) *Producer {
	p := &Producer{
		producer: producer,
		topic:    topic,
		metrics:  metrics,
		log:      log,
	}
	if dlqTopic != "" {
		p.dlq = NewDLQProducer(producer, dlqTopic)
	}
	return p
}

// Close закрывает Producer
func (p *Producer) Close() error { return p.producer.Close() }

// PublishSearchCompleted публикует событие о завершённом поиске
func (p *Producer) PublishSearchCompleted(ctx context.Context, event *models.SearchEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	correlationID := getCorrelationID(ctx)
	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.ID.String()),
		Value:     sarama.ByteEncoder(value),
		Timestamp: event.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte(HeaderCorrelationID), Value: []byte(correlationID)},
		},
	}

	start := time.Now()
	partition, offset, err := p.producer.SendMessage(message)
	duration := time.Since(start).Milliseconds()
	p.metrics.RecordEvent(p.topic, duration, err != nil)

	if err != nil {
		p.log.WithError(err).WithFields(map[string]interface{}{
			"event_id":       event.ID,
			"correlation_id": correlationID,
		}).Error("Failed to publish search event")

		if p.dlq != nil {
			if dlqErr := p.dlq.PublishFailedEvent(message, value, err.Error(), correlationID); dlqErr != nil {
				p.log.WithError(dlqErr).Error("Failed to publish event to DLQ")
			}
		}
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.log.WithFields(map[string]interface{}{
		"event_id":  event.ID,
		"partition": partition,
		"offset":    offset,
	}).Debug("Search event published")

	return nil
}
