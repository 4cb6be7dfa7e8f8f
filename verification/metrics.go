package verification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var verificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "peerguard_verification_duration_sec",
	Help: "Duration of advisory verification calls",
})

var verificationCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "peerguard_verification_processed",
	Help: "Number of verification requests, by deciding path",
}, []string{"path"})

var parseFailureCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "peerguard_verification_parse_failures",
	Help: "Number of advisory verification responses which could not be decoded",
})
