package server

import (
	"github.com/nulzo/provider-gateway/internal/server/middleware"
	v1 "github.com/nulzo/provider-gateway/internal/server/v1"
)

func (s *Server) SetupRoutes() {
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Tracing("provider-gateway"))
	s.router.Use(middleware.ErrorHandler(s.logger))

	// Health check stays public.
	healthHandler := v1.NewHealthHandler()
	s.router.GET("/health", healthHandler.Health)

	api := s.router.Group("/v1")
	api.Use(middleware.Auth(s.config.Server.APIKeys))

	limiter := middleware.NewRateLimiter(
		s.config.RateLimit.RequestsPerSecond,
		s.config.RateLimit.Burst,
		s.logger,
	)
	api.Use(limiter.Middleware())

	{
		generationHandler := v1.NewGenerationHandler(s.service)
		api.POST("/generate", generationHandler.Generate)

		modelHandler := v1.NewModelHandler()
		api.GET("/models", modelHandler.ListModels)
		api.GET("/models/tiers", modelHandler.ListTiers)
		api.GET("/models/:id", modelHandler.GetModel)

		if s.repo != nil {
			usageHandler := v1.NewUsageHandler(s.repo, s.cache)
			api.GET("/usage/daily", usageHandler.GetDailyStats)
			api.GET("/usage/recent", usageHandler.GetRecent)
		}
	}
}
