package cache

import "sync/atomic"

// Metrics - структура метрик кеша. Для счётчиков используются атомики
type Metrics struct {
	CacheHit  atomic.Uint64
	CacheMiss atomic.Uint64
}

// Hit увеличивает счётчик CacheHit на 1
func (m *Metrics) Hit() {
	m.CacheHit.Add(1)
}

// Miss увеличивает счётчик CacheMiss на 1
func (m *Metrics) Miss() {
	m.CacheMiss.Add(1)
}
