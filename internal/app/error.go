package app

import (
	"github.com/farplay/blackjack/internal/http/middleware"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
