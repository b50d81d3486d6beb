package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/sentiquery/internal/metrics"
)

const HEALTHCHECK_INTERVAL = 15 * time.Second

type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// MonitorScorerHealth probes the inference service on every tick until ctx is
// done, storing the result in healthy and the scorer health gauge.
func MonitorScorerHealth(ctx context.Context, checker HealthChecker, healthy *atomic.Bool, interval time.Duration) {
	if interval <= 0 {
		interval = HEALTHCHECK_INTERVAL
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	probe(ctx, checker, healthy)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe(ctx, checker, healthy)
		}
	}
}

func probe(ctx context.Context, checker HealthChecker, healthy *atomic.Bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	isHealthy := checker.HealthCheck(ctx)
	wasHealthy := healthy.Swap(isHealthy)
	if isHealthy {
		metrics.ScorerHealthy.Set(1)
	} else {
		metrics.ScorerHealthy.Set(0)
	}

	if !isHealthy && wasHealthy {
		slog.Warn("[HealthCheck] Scorer is unhealthy")
	} else if isHealthy && !wasHealthy {
		slog.Info("[HealthCheck] Scorer recovered")
	}
}
