package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/pribylovaa/go-blogger-platform/internal/config"
)

// MemoryLimiter — внутрипроцессная реализация Limiter: на каждый ключ
// хранится список таймстемпов запросов, продрезаемый при каждой проверке.
// Инкременты по одному ключу сериализует общий мьютекс, иначе конкурентные
// запросы могли бы недосчитаться друг друга и пропустить всплеск.
type MemoryLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration

	now func() time.Time // подменяется в тестах
}

// NewMemoryLimiter создаёт лимитер по конфигурации.
func NewMemoryLimiter(cfg config.RateLimitConfig) *MemoryLimiter {
	return &MemoryLimiter{
		hits:   make(map[string][]time.Time),
		limit:  cfg.Limit,
		window: cfg.Window,
		now:    time.Now,
	}
}

// Allow регистрирует запрос и проверяет бюджет окна.
func (l *MemoryLimiter) Allow(_ context.Context, ip, route string) (bool, error) {
	key := ip + "|" + route
	now := l.now()
	edge := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(edge) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.hits[key] = kept
		return false, nil
	}

	l.hits[key] = append(kept, now)

	return true, nil
}

var _ Limiter = (*MemoryLimiter)(nil)
