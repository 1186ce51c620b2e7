package middleware

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	logctx "github.com/pribylovaa/go-blogger-platform/internal/pkg/log"
	"github.com/pribylovaa/go-blogger-platform/internal/ratelimit"
	"github.com/pribylovaa/go-blogger-platform/internal/transport/http/apierrors"
)

var rateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "auth_rate_limited_total",
	Help: "Requests rejected by the rate limiter, by route.",
}, []string{"route"})

// RateLimit отклоняет запрос кодом 429 до какой-либо бизнес-логики,
// если бюджет окна для пары (IP источника, путь) исчерпан.
//
// Ошибка лимитера (например, недоступный Redis) пропускает запрос:
// деградация ограничителя не должна ронять вход и восстановление пароля.
func RateLimit(l ratelimit.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)

			allowed, err := l.Allow(r.Context(), ip, r.URL.Path)
			if err != nil {
				logctx.From(r.Context()).Warn("rate_limiter_failed",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				rateLimitedTotal.WithLabelValues(r.URL.Path).Inc()
				apierrors.WriteStatus(w, r, http.StatusTooManyRequests,
					"too_many_requests", "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP определяет IP клиента: X-Real-IP, затем первый адрес из
// X-Forwarded-For, затем RemoteAddr без порта.
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
