package storage

import (
	"context"
	"log/slog"
)

type HealthChecker struct {
	recorder Recorder
}

func NewHealthChecker(r Recorder) *HealthChecker {
	return &HealthChecker{
		recorder: r,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.recorder == nil {
		return false
	}

	if err := hc.recorder.Ping(ctx); err != nil {
		slog.Warn("Storage health check failed", "error", err)
		return false
	}

	return true
}
