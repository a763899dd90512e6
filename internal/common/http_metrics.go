package common

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "cmadmin"

func init() {
	prometheus.MustRegister(incomingRequestsCounter)
	prometheus.MustRegister(pendingRequestsCounter)
}

var incomingRequestsCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received by the dashboard server",
	},
	[]string{"method", "path"},
)

var pendingRequestsCounter = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_pending",
		Help:      "Number of dashboard HTTP requests currently in flight",
	},
	[]string{"method", "path"},
)
