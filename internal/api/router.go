package api

import (
	"github.com/gin-gonic/gin"
	"github.com/timmy/moodmeme/internal/api/handler"
	"github.com/timmy/moodmeme/internal/api/middleware"
	"github.com/timmy/moodmeme/internal/config"
	"github.com/timmy/moodmeme/internal/logger"
	"github.com/timmy/moodmeme/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	analyzeService *service.AnalyzeService,
	cfg *config.Config,
	log *logger.Logger,
) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	healthHandler := handler.NewHealthHandler()
	pageHandler := handler.NewPageHandler()
	analyzeHandler := handler.NewAnalyzeHandler(analyzeService)

	r.GET("/health", healthHandler.Health)
	r.GET("/", pageHandler.Index)
	r.POST("/analyze", analyzeHandler.Analyze)

	return r
}
