package kafka

import (
	"context"

	"poi-finder/internal/models"
)

type ProducerInterface interface {
	Close() error
	PublishSearchCompleted(ctx context.Context, event *models.SearchEvent) error
}
