package seeder

import (
	"context"
	"log"

	"github.com/farplay/blackjack/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	playerRepo domain.PlayerRepository
	gameRepo   domain.GameRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(playerRepo domain.PlayerRepository, gameRepo domain.GameRepository) *Seeder {
	return &Seeder{
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
	}
}

// SeedPlayers seeds the database with demo players and a played-out game
// history for each, so stats and the leaderboard have data to show
func (s *Seeder) SeedPlayers(ctx context.Context) error {
	log.Printf("Seeding players...")

	players := []struct {
		address string
		games   int
	}{
		{"0x8b3f91c2a45d9e70b12f8a6cde034917f25c6ba1", 12},
		{"0x14da7725c09b3fe85c00541cf8c2f9eab78d3402", 8},
		{"0xa95e03317dd0cb5898f6127d0e52b9c401fe88d3", 5},
		{"0x3c20fd6691a8b47e9f3305e8dba1476c2209a704", 2},
	}

	for _, p := range players {
		existing, err := s.playerRepo.GetByAddress(ctx, p.address)
		if err != nil {
			log.Printf("Error checking existing player, skipping.")
			continue
		}
		if existing != nil {
			log.Printf("Player already exists, skipping.")
			continue
		}

		if _, err := s.playerRepo.EnsureExists(ctx, p.address); err != nil {
			log.Printf("Error creating player.")
			return err
		}

		for i := 0; i < p.games; i++ {
			game, err := playOut(p.address)
			if err != nil {
				return err
			}
			if err := s.gameRepo.Create(ctx, game); err != nil {
				log.Printf("Error creating game history.")
				return err
			}
		}
		log.Printf("Successfully created player with game history.")
	}

	log.Printf("Player seeding completed successfully")
	return nil
}

// playOut deals a fresh game and plays it to completion with a basic
// hit-below-16 player policy, producing a coherent finished record
func playOut(address string) (*domain.Game, error) {
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

	for playerHand.Score() < 16 {
		card, err := deck.Draw()
		if err != nil {
			return nil, err
		}
		playerHand = append(playerHand, card)
	}

	status := domain.GameStatusPlayerBusted
	if !playerHand.IsBust() {
		for dealerHand.Score() < 17 || dealerHand.IsSoft17() {
			card, err := deck.Draw()
			if err != nil {
				return nil, err
			}
			dealerHand = append(dealerHand, card)
		}

		playerScore := playerHand.Score()
		dealerScore := dealerHand.Score()
		switch {
		case dealerHand.IsBust():
			status = domain.GameStatusDealerBusted
		case playerScore > dealerScore:
			status = domain.GameStatusPlayerWins
		case playerScore == dealerScore:
			status = domain.GameStatusTie
		default:
			status = domain.GameStatusDealerWins
		}
	}

	return &domain.Game{
		Address:     address,
		PlayerCards: playerHand,
		DealerCards: dealerHand,
		Deck:        deck,
		PlayerScore: playerHand.Score(),
		DealerScore: dealerHand.Score(),
		Status:      status,
		Version:     1,
	}, nil
}
