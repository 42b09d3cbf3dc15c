package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JoinDuration tracks the latency of join requests by outcome
	JoinDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "groupbuy_join_duration_seconds",
			Help: "Duration of campaign join requests in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
			},
		},
		[]string{"outcome"},
	)

	// VersionConflicts counts optimistic-concurrency conflicts per operation
	VersionConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groupbuy_version_conflicts_total",
			Help: "Campaign saves rejected because the stored version advanced",
		},
		[]string{"operation"},
	)

	// StatusTransitions counts campaigns entering each status
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groupbuy_status_transitions_total",
			Help: "Campaign status transitions by target status",
		},
		[]string{"status"},
	)

	// MilestonesReached counts milestones unlocked
	MilestonesReached = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "groupbuy_milestones_reached_total",
			Help: "Milestones newly reached",
		},
	)
)

// RecordJoin records the duration of a join request
func RecordJoin(outcome string, d time.Duration) {
	JoinDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// RecordConflict records a version conflict for operation
func RecordConflict(operation string) {
	VersionConflicts.WithLabelValues(operation).Inc()
}

// RecordTransition records a campaign entering status
func RecordTransition(status string) {
	StatusTransitions.WithLabelValues(status).Inc()
}

// RecordMilestones records n newly reached milestones
func RecordMilestones(n int) {
	if n > 0 {
		MilestonesReached.Add(float64(n))
	}
}
