package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// limiterFunc — адаптер для подстановки лимитера в тестах.
type limiterFunc func(ctx context.Context, ip, route string) (bool, error)

func (f limiterFunc) Allow(ctx context.Context, ip, route string) (bool, error) {
	return f(ctx, ip, route)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	mk := func(remoteAddr string, headers map[string]string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remoteAddr
		for k, v := range headers {
			r.Header.Set(k, v)
		}
		return r
	}

	// X-Real-IP — высший приоритет.
	require.Equal(t, "1.1.1.1", ClientIP(mk("9.9.9.9:1234", map[string]string{
		"X-Real-IP":       "1.1.1.1",
		"X-Forwarded-For": "2.2.2.2, 3.3.3.3",
	})))

	// Первый адрес из X-Forwarded-For.
	require.Equal(t, "2.2.2.2", ClientIP(mk("9.9.9.9:1234", map[string]string{
		"X-Forwarded-For": "2.2.2.2, 3.3.3.3",
	})))
	require.Equal(t, "2.2.2.2", ClientIP(mk("9.9.9.9:1234", map[string]string{
		"X-Forwarded-For": "2.2.2.2",
	})))

	// RemoteAddr без порта.
	require.Equal(t, "9.9.9.9", ClientIP(mk("9.9.9.9:1234", nil)))
	require.Equal(t, "9.9.9.9", ClientIP(mk("9.9.9.9", nil)))
}

func TestRateLimit_Allowed(t *testing.T) {
	t.Parallel()

	var gotIP, gotRoute string
	lim := limiterFunc(func(_ context.Context, ip, route string) (bool, error) {
		gotIP, gotRoute = ip, route
		return true, nil
	})

	h := RateLimit(lim)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/auth/password-recovery", nil)
	req.RemoteAddr = "10.0.0.1:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "10.0.0.1", gotIP)
	require.Equal(t, "/auth/password-recovery", gotRoute)
}

func TestRateLimit_Limited(t *testing.T) {
	t.Parallel()

	lim := limiterFunc(func(context.Context, string, string) (bool, error) { return false, nil })

	h := RateLimit(lim)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/new-password", nil))

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Contains(t, rec.Body.String(), "too_many_requests")
}

func TestRateLimit_FailOpen(t *testing.T) {
	t.Parallel()

	// Недоступный лимитер не должен ронять маршрут.
	lim := limiterFunc(func(context.Context, string, string) (bool, error) {
		return false, errors.New("redis down")
	})

	h := RateLimit(lim)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/password-recovery", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
}
