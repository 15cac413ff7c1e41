package console

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Metrics       = prometheus.NewRegistry()
	refreshMetric = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bootdash_refresh_total",
		Help: "The total refreshes by view and result",
	}, []string{"view", "result"})
	devicesMetric = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bootdash_devices",
		Help: "The devices waiting for a target at the last poll",
	})
)

func init() {
	Metrics.MustRegister(refreshMetric)
	Metrics.MustRegister(devicesMetric)
}
