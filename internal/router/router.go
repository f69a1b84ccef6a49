package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/service"
)

// Config holds the dependencies of the HTTP API
type Config struct {
	Engine          service.BoardEngine
	Resolver        handler.DropResolver
	Events          handler.EventStream
	Logger          *zap.Logger
	Metrics         *metrics.Metrics
	MetricsHandler  http.Handler
	JWTSecret       string
	BasePath        string
	AllowedOrigins  []string
	Roles           []string
	StorageBackend  string
	ReadinessChecks map[string]handler.ReadinessCheck
}

// Setup builds the gin engine serving the board API
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.MetricsHandler == nil {
		cfg.MetricsHandler = promhttp.Handler()
	}
	if cfg.Resolver == nil {
		cfg.Resolver = service.NewDragResolver(cfg.Engine, nil, cfg.Metrics, cfg.Logger)
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	boardHandler := handler.NewBoardHandler(cfg.Engine)
	columnHandler := handler.NewColumnHandler(cfg.Engine)
	cardHandler := handler.NewCardHandler(cfg.Engine)
	dragHandler := handler.NewDragHandler(cfg.Engine, cfg.Resolver)
	healthHandler := handler.NewHealthHandler(cfg.Engine, cfg.StorageBackend, cfg.ReadinessChecks)
	meHandler := handler.NewMeHandler(cfg.Roles)

	metricsHandler := gin.WrapH(cfg.MetricsHandler)
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)

	// probes and scrapes at the root for the cluster
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler)

	api := r.Group(cfg.BasePath)
	{
		if cfg.BasePath != "" && cfg.BasePath != "/" {
			api.GET("/health", healthHandler.Health)
			api.GET("/ready", healthHandler.Ready)
			api.GET("/metrics", metricsHandler)
		}
		api.GET("/swagger/*any", swaggerHandler)

		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(cfg.JWTSecret))
		{
			authenticated.GET("/me", meHandler.Me)

			if cfg.Events != nil {
				authenticated.GET("/events", handler.NewEventsHandler(cfg.Events).Subscribe)
			}

			boards := authenticated.Group("/boards")
			{
				boards.GET("", boardHandler.ListBoards)
				boards.POST("", boardHandler.CreateBoard)
				boards.GET("/selected", boardHandler.GetSelectedBoard)
				boards.PUT("/selected", boardHandler.SelectBoard)
				boards.GET("/:boardId", boardHandler.GetBoard)
				boards.DELETE("/:boardId", boardHandler.DeleteBoard)

				boards.POST("/:boardId/columns", columnHandler.AddColumn)
				boards.POST("/:boardId/columns/move", columnHandler.MoveColumn)
				boards.PATCH("/:boardId/columns/:columnId", columnHandler.RenameColumn)
				boards.DELETE("/:boardId/columns/:columnId", columnHandler.DeleteColumn)

				boards.POST("/:boardId/columns/:columnId/cards", cardHandler.AddCard)
				boards.PATCH("/:boardId/cards/:cardId", cardHandler.UpdateCard)
				boards.DELETE("/:boardId/cards/:cardId", cardHandler.DeleteCard)
				boards.POST("/:boardId/cards/:cardId/move", cardHandler.MoveCard)

				boards.POST("/:boardId/drag", dragHandler.Drop)
			}
		}
	}

	return r
}
