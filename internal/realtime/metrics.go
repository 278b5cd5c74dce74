package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "jobportal_ws_sessions",
		Help: "Registered websocket sessions.",
	})

	pushesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobportal_ws_pushes_total",
		Help: "Events delivered to websocket sessions.",
	}, []string{"event"})

	pushesDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobportal_ws_pushes_dropped_total",
		Help: "Events dropped because the session send buffer was full.",
	}, []string{"event"})
)
