package service

import (
	"time"

	"github.com/ie-dashboard/backend/internal/pkg/observability"
)

func observeAssembly(domain string, start time.Time) {
	observability.ViewAssembleDuration.WithLabelValues(domain).Observe(time.Since(start).Seconds())
}
