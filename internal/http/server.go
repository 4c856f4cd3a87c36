package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/farplay/blackjack/internal/http/handlers"
	"github.com/farplay/blackjack/internal/http/middleware"
	"github.com/farplay/blackjack/internal/infrastructure/auth"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	jwtService     auth.JWTService
	gameHandler    *handlers.GameHandler
	statsHandler   *handlers.StatsHandler
	sessionHandler *handlers.SessionHandler
	errorHandler   *middleware.ErrorHandler
	port           string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	gameHandler *handlers.GameHandler,
	statsHandler *handlers.StatsHandler,
	sessionHandler *handlers.SessionHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:         router,
		jwtService:     jwtService,
		gameHandler:    gameHandler,
		statsHandler:   statsHandler,
		sessionHandler: sessionHandler,
		errorHandler:   errorHandler,
		port:           port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/session", s.sessionHandler.CreateSession)
		}

		// Frame routes authenticate per request via the signed message.
		frameRoutes := v1.Group("/frames")
		{
			frameRoutes.POST("/start", s.gameHandler.StartFrame)
			frameRoutes.POST("/hit", s.gameHandler.HitFrame)
			frameRoutes.POST("/stand", s.gameHandler.StandFrame)
			frameRoutes.POST("/stats", s.statsHandler.StatsFrame)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			gameRoutes := protected.Group("/game")
			{
				gameRoutes.GET("", s.gameHandler.Active)
				gameRoutes.POST("/start", s.gameHandler.Start)
				gameRoutes.POST("/hit", s.gameHandler.Hit)
				gameRoutes.POST("/stand", s.gameHandler.Stand)
			}

			protected.GET("/stats", s.statsHandler.Stats)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
