package game

import (
	"context"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/lock"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

// GameUseCase implements domain.GameUseCase, the blackjack state machine.
// All state lives in the game store; the usecase holds nothing between
// requests beyond its collaborators.
type GameUseCase struct {
	gameRepo    domain.GameRepository
	playerRepo  domain.PlayerRepository
	lockManager *lock.PlayerLockManager
	logger      *logger.Logger
}

// NewGameUseCase creates a new game usecase
func NewGameUseCase(
	gameRepo domain.GameRepository,
	playerRepo domain.PlayerRepository,
	lockManager *lock.PlayerLockManager,
	logger *logger.Logger,
) domain.GameUseCase {
	return &GameUseCase{
		gameRepo:    gameRepo,
		playerRepo:  playerRepo,
		lockManager: lockManager,
		logger:      logger,
	}
}

// Start begins a game for the player, or returns the existing active game
func (uc *GameUseCase) Start(ctx context.Context, address string) (*domain.Game, error) {
	return uc.start(ctx, address)
}

// Hit deals one more card to the player's hand
func (uc *GameUseCase) Hit(ctx context.Context, address string) (*domain.Game, error) {
	return uc.hit(ctx, address)
}

// Stand ends the player's turn, plays out the dealer and resolves the game
func (uc *GameUseCase) Stand(ctx context.Context, address string) (*domain.Game, error) {
	return uc.stand(ctx, address)
}

// ActiveGame returns the player's current ongoing game without acting on it
func (uc *GameUseCase) ActiveGame(ctx context.Context, address string) (*domain.Game, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	game, err := uc.gameRepo.GetActiveByAddress(ctx, address)
	if err != nil {
		return nil, domain.NewDatabaseError("get active game", err)
	}
	if game == nil {
		return nil, domain.NewNoActiveGameError(address)
	}
	return game, nil
}
