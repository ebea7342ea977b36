package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// DLQProducer отправляет в Dead Letter Queue события, которые не удалось опубликовать
type DLQProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewDLQProducer возвращает DLQProducer поверх уже созданного sarama.SyncProducer
func NewDLQProducer(producer sarama.SyncProducer, topic string) *DLQProducer {
	return &DLQProducer{producer: producer, topic: topic}
}

// PublishFailedEvent публикует неотправленное сообщение в DLQ вместе с исходной ошибкой
func (p *DLQProducer) PublishFailedEvent(msg *sarama.ProducerMessage, value []byte, originalErr, correlationID string) error {
	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       msg.Key,
		Value:     sarama.ByteEncoder(value),
		Timestamp: time.Now(),
		Headers: []sarama.RecordHeader{
			{Key: []byte("original_topic"), Value: []byte(msg.Topic)},
			{Key: []byte("original_error"), Value: []byte(originalErr)},
			{Key: []byte(HeaderCorrelationID), Value: []byte(correlationID)},
		},
	}
	_, _, err := p.producer.SendMessage(message)
	return err
}
