// Package router builds the gin engine and mounts every module.
package router

import (
	"context"
	"net/http"
	"time"

	apphttp "homeverse_backend/internal/http"
	"homeverse_backend/platform/httpkit"
	"homeverse_backend/platform/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// New creates the gin engine with shared middleware, health and metrics
// endpoints, and the routes of every module in app.Modules.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	if app.Config.IsMetricsEnabled() {
		engine.Use(metrics.Middleware())
	}
	engine.Use(cors.New(corsConfig(app.Config)))

	engine.GET("/api/health", healthHandler(app.Health, app.Optional))
	if app.Config.IsMetricsEnabled() {
		engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	limiter := httpkit.NewIPRateLimiter(rate.Limit(app.Config.GetRateLimitRPS()), app.Config.GetRateLimitBurst(), app.Logger)
	v1 := engine.Group("/api/v1")
	v1.Use(limiter.RateLimit())

	routerCtx := &apphttp.RouterContext{
		Engine: engine,
		V1:     v1,
		Config: app.Config,
	}

	apphttp.Mount(routerCtx, app.Logger, app.Modules...)

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", httpkit.HeaderRequestID},
		ExposeHeaders:    []string{httpkit.HeaderRequestID},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() || len(cfg.GetCORSOrigins()) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	return corsCfg
}

func healthHandler(required, optional map[string]apphttp.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		deps := make(map[string]string, len(required)+len(optional))
		status := http.StatusOK
		for name, check := range required {
			if err := check.Ping(ctx); err != nil {
				deps[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "ok"
		}
		for name, check := range optional {
			deps[name] = "ok"
			if err := check.Ping(ctx); err != nil {
				deps[name] = "down"
			}
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{"status": state, "dependencies": deps})
	}
}
