package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/provider-gateway/internal/config"
	"github.com/nulzo/provider-gateway/internal/gateway"
	"github.com/nulzo/provider-gateway/internal/server/middleware"
	"github.com/nulzo/provider-gateway/internal/server/validator"
	"github.com/nulzo/provider-gateway/internal/store"
	"github.com/nulzo/provider-gateway/internal/store/cache"
	"go.uber.org/zap"
)

type Server struct {
	router  *gin.Engine
	config  *config.Config
	logger  *zap.Logger
	service gateway.Service
	repo    store.Repository
	cache   cache.CacheService
}

// New assembles the HTTP layer. repo and cache may be nil when the usage
// ledger is disabled; the routes that need them are skipped.
func New(cfg *config.Config, logger *zap.Logger, service gateway.Service, repo store.Repository, cacheSvc cache.CacheService) *Server {

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	validator.InitValidator()

	engine := gin.New()

	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.Logger(logger))

	s := &Server{
		router:  engine,
		config:  cfg,
		logger:  logger,
		service: service,
		repo:    repo,
		cache:   cacheSvc,
	}

	s.SetupRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}
