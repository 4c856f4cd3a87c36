package game

import (
	"context"

	"github.com/farplay/blackjack/internal/domain"
	"go.uber.org/zap"
)

// start creates a new game for the player unless one is already running.
// Idempotent: rapid duplicate starts observe the same game, never two.
func (uc *GameUseCase) start(ctx context.Context, address string) (*domain.Game, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	if err := uc.lockManager.Lock(ctx, address); err != nil {
		return nil, err
	}
	defer uc.lockManager.Unlock(address)

	if _, err := uc.playerRepo.EnsureExists(ctx, address); err != nil {
		return nil, domain.NewDatabaseError("ensure player", err)
	}

	existing, err := uc.gameRepo.GetActiveByAddress(ctx, address)
	if err != nil {
		return nil, domain.NewDatabaseError("get active game", err)
	}
	if existing != nil {
		uc.logger.Info("Start requested with game already in progress, returning it",
			zap.String("address", address),
			zap.Int64("gameID", existing.ID))
		return existing, nil
	}

	game, err := uc.deal(address)
	if err != nil {
		return nil, err
	}

	if err := uc.gameRepo.Create(ctx, game); err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeActiveGameExists) {
			// Lost a create race with another instance; the winner's game is
			// the player's game now.
			winner, fetchErr := uc.gameRepo.GetActiveByAddress(ctx, address)
			if fetchErr == nil && winner != nil {
				return winner, nil
			}
		}
		return nil, domain.NewDatabaseError("create game", err)
	}

	uc.logger.Info("Game started",
		zap.String("address", address),
		zap.Int64("gameID", game.ID),
		zap.Int("playerScore", game.PlayerScore))

	return game, nil
}

// deal builds a fresh shuffled deck and deals the opening hands in the
// player, dealer, player, dealer order. The dealer's second card stays
// server-side until the snapshot layer decides what to expose.
func (uc *GameUseCase) deal(address string) (*domain.Game, error) {
	deck := domain.NewShuffledDeck()

	var playerHand, dealerHand domain.Hand
	for i := 0; i < 2; i++ {
		playerCard, err := deck.Draw()
		if err != nil {
			return nil, err
		}
		dealerCard, err := deck.Draw()
		if err != nil {
			return nil, err
		}
		playerHand = append(playerHand, playerCard)
		dealerHand = append(dealerHand, dealerCard)
	}

	return &domain.Game{
		Address:     address,
		PlayerCards: playerHand,
		DealerCards: dealerHand,
		Deck:        deck,
		PlayerScore: playerHand.Score(),
		DealerScore: dealerHand.Score(),
		Status:      domain.GameStatusOngoing,
		Version:     1,
	}, nil
}
