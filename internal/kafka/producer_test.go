package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

func testEvent() *models.SearchEvent {
	return &models.SearchEvent{
		ID:          uuid.New(),
		Type:        models.EventTypeSearchCompleted,
		Mode:        models.SearchModeMeetup,
		Category:    models.CategoryRestaurant,
		Origin:      geo.Coordinate{Lat: 40, Lng: -75},
		RadiusMiles: 2,
		Results:     5,
		CreatedAt:   time.Now(),
	}
}

func header(msg *sarama.ProducerMessage, key string) string {
	for _, h := range msg.Headers {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublishSearchCompleted(t *testing.T) {
	syncProducer := mocks.NewSyncProducer(t, nil)
	metrics := NewMetrics()
	producer := NewProducerFromSync(syncProducer, "search_events", "dead_letter_queue", logger.NewTest(), metrics)

	event := testEvent()
	syncProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "search_events", msg.Topic)
		assert.Equal(t, "req-42", header(msg, HeaderCorrelationID))
		assert.Equal(t, string(models.EventTypeSearchCompleted), header(msg, "event_type"))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var decoded models.SearchEvent
		require.NoError(t, json.Unmarshal(value, &decoded))
		assert.Equal(t, event.ID, decoded.ID)
		assert.Equal(t, 5, decoded.Results)
		return nil
	})

	ctx := WithCorrelationID(context.Background(), "req-42")
	require.NoError(t, producer.PublishSearchCompleted(ctx, event))
	require.NoError(t, producer.Close())

	stats := metrics.GetStatistics()
	require.Len(t, stats.Statistics, 1)
	assert.Equal(t, uint64(1), stats.Statistics[0].TotalPublishedEvents)
	assert.Equal(t, uint64(0), stats.Statistics[0].Errors)
}

func TestPublishFailureGoesToDLQ(t *testing.T) {
	syncProducer := mocks.NewSyncProducer(t, nil)
	metrics := NewMetrics()
	producer := NewProducerFromSync(syncProducer, "search_events", "dead_letter_queue", logger.NewTest(), metrics)

	syncProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	syncProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "dead_letter_queue" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		assert.Equal(t, "search_events", header(msg, "original_topic"))
		assert.NotEmpty(t, header(msg, "original_error"))
		assert.NotEmpty(t, header(msg, HeaderCorrelationID))
		return nil
	})

	err := producer.PublishSearchCompleted(context.Background(), testEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, producer.Close())

	stats := metrics.GetStatistics()
	require.Len(t, stats.Statistics, 1)
	assert.Equal(t, uint64(1), stats.Statistics[0].Errors)
}

func TestMetricsStatistics(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordEvent("b", 10, false)
	metrics.RecordEvent("a", 4, false)
	metrics.RecordEvent("a", 6, true)

	stats := metrics.GetStatistics()
	require.Len(t, stats.Statistics, 2)
	assert.Equal(t, "a", stats.Statistics[0].Topic)
	assert.Equal(t, uint64(2), stats.Statistics[0].TotalPublishedEvents)
	assert.Equal(t, uint64(1), stats.Statistics[0].Errors)
	assert.Equal(t, "5 ms", stats.Statistics[0].AvgPublishDuration)
	assert.Equal(t, "10 ms", stats.Statistics[1].AvgPublishDuration)
}

func TestCorrelationIDGenerated(t *testing.T) {
	id := getCorrelationID(context.Background())
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, "abc", getCorrelationID(WithCorrelationID(context.Background(), "abc")))
}
