package app

import (
	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/http/handlers"
	"github.com/farplay/blackjack/internal/infrastructure/auth"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

func (a *application) InitGameHandler(uc domain.GameUseCase, fv domain.FrameVerifier, log *logger.Logger) *handlers.GameHandler {
	return handlers.NewGameHandler(uc, fv, log)
}

func (a *application) InitStatsHandler(uc domain.StatsUseCase, fv domain.FrameVerifier, log *logger.Logger) *handlers.StatsHandler {
	return handlers.NewStatsHandler(uc, fv, log)
}

func (a *application) InitSessionHandler(fv domain.FrameVerifier, jwt auth.JWTService, log *logger.Logger) *handlers.SessionHandler {
	return handlers.NewSessionHandler(fv, jwt, log)
}
