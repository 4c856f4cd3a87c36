package game

import (
	"context"

	"github.com/farplay/blackjack/internal/domain"
	"go.uber.org/zap"
)

// stand ends the player's turn: the dealer auto-plays and the game resolves
// to exactly one terminal state.
func (uc *GameUseCase) stand(ctx context.Context, address string) (*domain.Game, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	if err := uc.lockManager.Lock(ctx, address); err != nil {
		return nil, err
	}
	defer uc.lockManager.Unlock(address)

	return uc.runAction(ctx, address, "stand", func(game *domain.Game) error {
		if err := uc.playDealer(game); err != nil {
			return err
		}

		game.Status = resolve(game.PlayerCards, game.DealerCards)

		uc.logger.Info("Game resolved",
			zap.Int64("gameID", game.ID),
			zap.String("status", string(game.Status)),
			zap.Int("playerScore", game.PlayerScore),
			zap.Int("dealerScore", game.DealerScore))

		return nil
	})
}

// playDealer draws for the dealer until the hand stands: hard 17 or any 18+
// stops the dealer, a soft 17 forces another draw.
func (uc *GameUseCase) playDealer(game *domain.Game) error {
	for game.DealerCards.Score() < 17 || game.DealerCards.IsSoft17() {
		card, err := game.Deck.Draw()
		if err != nil {
			return err
		}
		game.DealerCards = append(game.DealerCards, card)
	}

	game.PlayerScore = game.PlayerCards.Score()
	game.DealerScore = game.DealerCards.Score()
	return nil
}

// resolve maps the final hands to a terminal state. The player cannot be
// bust here; a bust ends the game at hit time.
func resolve(playerHand, dealerHand domain.Hand) domain.GameStatus {
	playerScore := playerHand.Score()
	dealerScore := dealerHand.Score()

	switch {
	case dealerHand.IsBust():
		return domain.GameStatusDealerBusted
	case playerScore > dealerScore:
		return domain.GameStatusPlayerWins
	case playerScore == dealerScore:
		return domain.GameStatusTie
	default:
		return domain.GameStatusDealerWins
	}
}
