package game

import (
	"context"

	"github.com/farplay/blackjack/internal/domain"
	"go.uber.org/zap"
)

const maxAddressLength = 64

// validateAddress validates the player identifier
func validateAddress(address string) error {
	if address == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Player address is required", 400, nil)
	}
	if len(address) > maxAddressLength {
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Player address too long", 400, nil)
	}
	return nil
}

// getActiveGame fetches the player's ongoing game, failing with NO_ACTIVE_GAME
// when there is nothing to act on
func (uc *GameUseCase) getActiveGame(ctx context.Context, address string) (*domain.Game, error) {
	game, err := uc.gameRepo.GetActiveByAddress(ctx, address)
	if err != nil {
		return nil, domain.NewDatabaseError("get active game", err)
	}
	if game == nil {
		return nil, domain.NewNoActiveGameError(address)
	}
	return game, nil
}

// action is one read-validate-mutate-persist pass over an ongoing game.
// The mutation runs against a freshly fetched record, so re-running the
// action after losing an optimistic write is safe.
type action func(game *domain.Game) error

// runAction executes a game action with a single automatic retry on
// CONCURRENT_MODIFICATION. The retry re-reads the game; if another writer
// finished it in between, the action fails with GAME_ALREADY_FINISHED
// instead of double-applying.
func (uc *GameUseCase) runAction(ctx context.Context, address string, name string, apply action) (*domain.Game, error) {
	game, err := uc.attemptAction(ctx, address, apply)
	if err == nil {
		return game, nil
	}

	if !domain.IsErrorCode(err, domain.ErrCodeConcurrentModification) {
		return nil, err
	}

	uc.logger.Warn("Game action lost optimistic write, retrying with fresh read",
		zap.String("action", name),
		zap.String("address", address))

	return uc.attemptAction(ctx, address, apply)
}

// attemptAction performs one fetch-mutate-persist cycle
func (uc *GameUseCase) attemptAction(ctx context.Context, address string, apply action) (*domain.Game, error) {
	game, err := uc.getActiveGame(ctx, address)
	if err != nil {
		return nil, err
	}

	expectedVersion := game.Version
	if err := apply(game); err != nil {
		return nil, err
	}

	if err := uc.gameRepo.UpdateWithVersion(ctx, game, expectedVersion); err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeConcurrentModification) {
			// Find out whether the other writer finished the game; a stale
			// action against a terminal game is a distinct caller error.
			current, fetchErr := uc.gameRepo.GetByID(ctx, game.ID)
			if fetchErr == nil && current != nil && current.IsFinished() {
				return nil, domain.NewGameAlreadyFinishedError(game.ID)
			}
		}
		return nil, err
	}

	return game, nil
}
