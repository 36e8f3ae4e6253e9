package http

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/travel-wellness/internal/domain/auth"
	"github.com/yanqian/travel-wellness/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger = logger.With("component", "http.router")

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestContext(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1", authMiddleware(authSvc))
	{
		api.POST("/jetlag/plan", handler.PlanJetLag)
		api.GET("/timezones/difference", handler.CompareTimeZones)
		api.POST("/exposure/heat-index", handler.HeatIndex)
		api.POST("/exposure/extreme-heat", handler.ExtremeHeat)
		api.POST("/exposure/activity", handler.ActivityRisk)
		api.POST("/hydration", handler.Hydration)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
