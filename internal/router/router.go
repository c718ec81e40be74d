package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "kanban-board-api/docs"
	"kanban-board-api/internal/cache"
	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/validation"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	BasePath       string
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer // nil serves the default registry
	Redis          *redis.Client       // nil disables the board list cache
	CacheTTL       time.Duration
	AllowedOrigins []string
	Validator      *validation.Engine
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.ErrorHandler(cfg.Logger))

	metricsHandler := gin.WrapH(promhttp.Handler())
	if cfg.Gatherer != nil {
		metricsHandler = gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Probes and metrics answer at the root for the cluster and under the base path
	// for the ingress.
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler)

	validator := cfg.Validator
	if validator == nil {
		validator = validation.New()
	}

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(cfg.DB, validator)

	// Initialize services
	boardCache := cache.NewBoardListCache(cfg.Redis, cfg.CacheTTL, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, validator, boardCache, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardService)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
		api.GET("/metrics", metricsHandler)
	}
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := api.Group("/v1")
	{
		v1.GET("/status", handler.GetStatus)

		boards := v1.Group("/boards")
		{
			boards.GET("", boardHandler.GetAllBoards)
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:id", boardHandler.GetBoardDetail)
			boards.PUT("/:id", boardHandler.UpdateBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
		}
	}

	return r
}
