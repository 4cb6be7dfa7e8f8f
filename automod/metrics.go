package automod

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var moderationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "peerguard_moderation_duration_sec",
	Help: "Total duration of content moderation",
}, []string{"source"})

var moderationCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "peerguard_moderation_processed",
	Help: "Number of content items moderated, by deciding source and outcome",
}, []string{"source", "outcome"})

var ruleGroupHitCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "peerguard_rule_group_hits",
	Help: "Number of deterministic rule group matches",
}, []string{"group"})

var advisoryErrorCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "peerguard_advisory_moderation_errors",
	Help: "Number of advisory classification failures handled fail-open",
})

var eventProcessCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "peerguard_events_processed",
	Help: "Number of deferred platform events processed",
}, []string{"type"})

var flagNotifyErrorCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "peerguard_flag_notify_errors",
	Help: "Number of failed flag notifications to the platform",
})
