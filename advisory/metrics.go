package advisory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "peerguard_advisory_requests",
	Help: "Number of advisory API requests, by HTTP status code",
}, []string{"status"})

var requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "peerguard_advisory_request_duration_sec",
	Help: "Duration of advisory API requests",
})
