package app

import (
	"github.com/farplay/blackjack/internal/infrastructure/lock"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

func (a *application) InitPlayerLockManager(log *logger.Logger) *lock.PlayerLockManager {
	return lock.NewPlayerLockManager(log)
}
