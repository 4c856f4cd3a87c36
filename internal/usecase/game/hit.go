package game

import (
	"context"

	"github.com/farplay/blackjack/internal/domain"
	"go.uber.org/zap"
)

// hit draws one card for the player from the game's remaining deck. A total
// over 21 busts the player on the spot; the bust check never waits for
// dealer resolution.
func (uc *GameUseCase) hit(ctx context.Context, address string) (*domain.Game, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	if err := uc.lockManager.Lock(ctx, address); err != nil {
		return nil, err
	}
	defer uc.lockManager.Unlock(address)

	return uc.runAction(ctx, address, "hit", func(game *domain.Game) error {
		card, err := game.Deck.Draw()
		if err != nil {
			// A full deck always covers one game; running out mid-game is a
			// state corruption, not a playable outcome.
			uc.logger.Error("Deck exhausted during hit",
				zap.Int64("gameID", game.ID),
				zap.Int("playerCards", len(game.PlayerCards)),
				zap.Int("dealerCards", len(game.DealerCards)))
			return err
		}

		game.PlayerCards = append(game.PlayerCards, card)
		game.PlayerScore = game.PlayerCards.Score()

		if game.PlayerCards.IsBust() {
			game.Status = domain.GameStatusPlayerBusted
			uc.logger.Info("Player busted",
				zap.Int64("gameID", game.ID),
				zap.Int("playerScore", game.PlayerScore))
		}

		return nil
	})
}
