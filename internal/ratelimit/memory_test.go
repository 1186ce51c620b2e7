package ratelimit

// Тесты in-memory лимитера (internal/ratelimit/memory.go).
//
// Время подменяется через поле now: окно проверяется детерминированно,
// включая границу (ровно window спустя запрос всё ещё в окне,
// window+1ns — уже нет).

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-blogger-platform/internal/config"
)

func newTestLimiter(limit int, window time.Duration) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter(config.RateLimitConfig{Limit: limit, Window: window})
	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(5, 10*time.Second)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1", "/auth/password-recovery")
		require.NoError(t, err)
		require.True(t, ok, "request %d must pass", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1", "/auth/password-recovery")
	require.NoError(t, err)
	require.False(t, ok, "6th request in window must be limited")
}

func TestMemoryLimiter_SlidingWindow(t *testing.T) {
	t.Parallel()

	l, current := newTestLimiter(2, 10*time.Second)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "ip", "r")
	require.True(t, ok)

	*current = current.Add(6 * time.Second)
	ok, _ = l.Allow(ctx, "ip", "r")
	require.True(t, ok)

	// Оба запроса ещё в окне.
	*current = current.Add(2 * time.Second)
	ok, _ = l.Allow(ctx, "ip", "r")
	require.False(t, ok)

	// Первый запрос выпал из окна (прошло больше 10s), освободился слот.
	*current = current.Add(3 * time.Second)
	ok, _ = l.Allow(ctx, "ip", "r")
	require.True(t, ok)
}

func TestMemoryLimiter_WindowBoundary(t *testing.T) {
	t.Parallel()

	l, current := newTestLimiter(1, 10*time.Second)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "ip", "r")
	require.True(t, ok)

	// За наносекунду до края окна запрос ещё учитывается.
	*current = current.Add(10*time.Second - time.Nanosecond)
	ok, _ = l.Allow(ctx, "ip", "r")
	require.False(t, ok)

	// Ровно window спустя запрос выпадает из окна (граница эксклюзивна).
	*current = current.Add(time.Nanosecond)
	ok, _ = l.Allow(ctx, "ip", "r")
	require.True(t, ok)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(1, 10*time.Second)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "10.0.0.1", "/auth/password-recovery")
	require.True(t, ok)

	// Другой IP и другой маршрут считаются отдельно.
	ok, _ = l.Allow(ctx, "10.0.0.2", "/auth/password-recovery")
	require.True(t, ok)
	ok, _ = l.Allow(ctx, "10.0.0.1", "/auth/new-password")
	require.True(t, ok)

	ok, _ = l.Allow(ctx, "10.0.0.1", "/auth/password-recovery")
	require.False(t, ok)
}

func TestMemoryLimiter_LimitedRequestDoesNotConsume(t *testing.T) {
	t.Parallel()

	l, current := newTestLimiter(1, 10*time.Second)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "ip", "r")
	require.True(t, ok)

	// Отклонённые запросы не продлевают занятость окна.
	for i := 0; i < 9; i++ {
		*current = current.Add(time.Second)
		ok, _ = l.Allow(ctx, "ip", "r")
		require.False(t, ok)
	}

	// Первый (и единственный учтённый) запрос выпал из окна.
	*current = current.Add(time.Second)
	ok, _ = l.Allow(ctx, "ip", "r")
	require.True(t, ok)
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(config.RateLimitConfig{Limit: 5, Window: 10 * time.Second})
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.Allow(ctx, "ip", "r")
			require.NoError(t, err)
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 5, allowed)
}
