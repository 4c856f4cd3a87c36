package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/farplay/blackjack/internal/http"
	"github.com/farplay/blackjack/internal/http/handlers"
	"github.com/farplay/blackjack/internal/http/middleware"
	"github.com/farplay/blackjack/internal/infrastructure/auth"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	gameHandler *handlers.GameHandler,
	statsHandler *handlers.StatsHandler,
	sessionHandler *handlers.SessionHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, gameHandler, statsHandler, sessionHandler, errorHandler, log, port)
}

// RunHTTPServer starts the HTTP server when the fx application starts
func (a *application) RunHTTPServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			log.Info("HTTP server started", zap.String("port", a.config.Server.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return log.Sync()
		},
	})
}
