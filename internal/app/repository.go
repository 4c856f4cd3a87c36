package app

import (
	"gorm.io/gorm"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/repository"
)

func (a *application) InitRepository(db *gorm.DB) (domain.GameRepository, domain.PlayerRepository) {
	return repository.NewGameRepository(db), repository.NewPlayerRepository(db)
}
