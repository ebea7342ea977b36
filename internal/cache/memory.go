package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"poi-finder/internal/logger"
)

// Memory - кеш в памяти процесса. Сбрасывается при перезапуске
type Memory struct {
	store   *gocache.Cache
	log     *logger.Logger
	metrics *Metrics
}

// NewMemory создаёт in-memory кеш с TTL по умолчанию и интервалом очистки
func NewMemory(defaultTTL, cleanupInterval time.Duration, log *logger.Logger) *Memory {
	return &Memory{
		store:   gocache.New(defaultTTL, cleanupInterval),
		log:     log,
		metrics: &Metrics{},
	}
}

// Set сохраняет значение в JSON, как и Redis, чтобы Get отдавал независимую копию
func (m *Memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	m.store.Set(key, data, ttl)
	m.log.WithField("key", key).Debug("Value set in memory cache")
	return nil
}

// Get получает значение по ключу
func (m *Memory) Get(_ context.Context, key string, dest interface{}) error {
	val, ok := m.store.Get(key)
	if !ok {
		return fmt.Errorf("key %s: %w", key, ErrNotFound)
	}

	data, ok := val.([]byte)
	if !ok {
		return fmt.Errorf("unexpected value type for key %s", key)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal value for key %s: %w", key, err)
	}

	return nil
}

// Delete удаляет значение по ключу
func (m *Memory) Delete(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

// Flush очищает кеш
func (m *Memory) Flush() {
	m.store.Flush()
}

func (m *Memory) Hit() { m.metrics.Hit() }

func (m *Memory) Miss() { m.metrics.Miss() }

func (m *Memory) GetMetrics(_ context.Context) (uint64, uint64, int64, error) {
	return m.metrics.CacheHit.Load(), m.metrics.CacheMiss.Load(), int64(m.store.ItemCount()), nil
}

func (m *Memory) Backend() string { return "memory" }
