package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "iebackend"
)

var (
	SnapshotRefreshCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "snapshot", "refresh_total"),
		Help: "Number of default synthetic snapshot rotations",
	}, []string{"trigger"})
	ViewAssembleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "view", "assemble_duration_seconds"),
		Help:    "Duration of domain view assembly in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{"domain"})
)
