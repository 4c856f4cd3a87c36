package app

import (
	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/lock"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
	"github.com/farplay/blackjack/internal/usecase/game"
	"github.com/farplay/blackjack/internal/usecase/stats"
)

func (a *application) InitGameUseCase(
	gr domain.GameRepository,
	pr domain.PlayerRepository,
	lm *lock.PlayerLockManager,
	log *logger.Logger,
) domain.GameUseCase {
	return game.NewGameUseCase(gr, pr, lm, log)
}

func (a *application) InitStatsUseCase(
	gr domain.GameRepository,
	pr domain.PlayerRepository,
	log *logger.Logger,
) domain.StatsUseCase {
	return stats.NewStatsUseCase(gr, pr, log)
}
