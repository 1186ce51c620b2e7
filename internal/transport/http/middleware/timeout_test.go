package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	var ok bool

	h := Timeout(5 * time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func TestTimeout_RespectsExistingDeadline(t *testing.T) {
	t.Parallel()

	parent := time.Now().Add(time.Minute)
	ctx, cancel := context.WithDeadline(context.Background(), parent)
	defer cancel()

	var deadline time.Time

	h := Timeout(5 * time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, _ = r.Context().Deadline()
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, deadline.Equal(parent))
}

func TestTimeout_ZeroIsNoop(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		require.False(t, ok)
	})

	h := Timeout(0)(next)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
