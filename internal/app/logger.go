package app

import (
	"github.com/farplay/blackjack/internal/config"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
