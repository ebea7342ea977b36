package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound возвращается, если ключа нет в кеше или его TTL истёк
var ErrNotFound = errors.New("key not found")

// Cache - общий интерфейс Redis и in-memory кеша для ответов внешних сервисов
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Hit()
	Miss()
	GetMetrics(ctx context.Context) (uint64, uint64, int64, error)
	Backend() string
}

// GenerateKey генерирует ключ для кеша
func GenerateKey(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// Константы для префиксов ключей
const (
	KeyPrefixPlaces  = "places"
	KeyPrefixRatings = "ratings"
	KeyPrefixRoute   = "route"
	KeyPrefixGeocode = "geocode"
)
