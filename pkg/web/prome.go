package web

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	metrics        = prometheus.NewRegistry()
	sessionsMetric = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bootdash_sessions",
		Help: "The live dashboard pages",
	})
)

func init() {
	metrics.MustRegister(sessionsMetric)
}
