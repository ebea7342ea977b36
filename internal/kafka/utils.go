package kafka

import (
	"context"

	"github.com/google/uuid"
)

type correlationKey struct{}

// HeaderCorrelationID - имя заголовка сообщения и HTTP-запроса
const HeaderCorrelationID = "correlation_id"

// WithCorrelationID кладёт correlation_id в контекст запроса
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// getCorrelationID либо достаёт correlation_id из контекста, либо создаёт его
func getCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}
