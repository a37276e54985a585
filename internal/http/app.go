// Package http defines the contracts shared by the composition root, the
// router and the domain modules.
package http

import (
	"context"

	"homeverse_backend/platform/config"
	"homeverse_backend/platform/logger"
)

// RouterConfig is the configuration the router reads.
type RouterConfig interface {
	config.HTTPConfig
}

// HealthChecker is a backing service that can report readiness.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheckFunc adapts a plain function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

func (f HealthCheckFunc) Ping(ctx context.Context) error { return f(ctx) }

// App is what cmd/api hands to the router.
type App struct {
	Config RouterConfig
	Logger *logger.Logger
	// Health is keyed by dependency name ("database", "redis"). Empty when the
	// service runs on in-memory history without an archive.
	Health map[string]HealthChecker
	// Optional dependencies are reported by /api/health but never make it
	// return 503; the service answers without them.
	Optional map[string]HealthChecker
	Modules  []Module
}
