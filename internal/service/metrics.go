package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счётчики домена. Отказы ротации с несовпавшей версией выделены отдельно:
// рост auth_refresh_replays_total — сигнал о повторном предъявлении
// уже ротированных токенов.
var (
	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})

	rotationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_refresh_rotations_total",
		Help: "Successful refresh-token rotations.",
	})

	replaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_refresh_replays_total",
		Help: "Refresh attempts rejected by the issued_at version check.",
	})
)
