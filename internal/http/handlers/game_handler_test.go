package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farplay/blackjack/internal/domain"
)

func TestGameResponseHidesDealerHoleCardWhileOngoing(t *testing.T) {
	game := &domain.Game{
		ID:          7,
		Address:     "0xabc",
		PlayerCards: domain.Hand{domain.Card(5), domain.Card(9)},
		DealerCards: domain.Hand{domain.Card(10), domain.Card(23)},
		Deck:        domain.Deck{domain.Card(30), domain.Card(31)},
		PlayerScore: 14,
		DealerScore: 20,
		Status:      domain.GameStatusOngoing,
	}

	response := newGameResponse(game)

	assert.True(t, response.DealerHoleHidden)
	assert.Len(t, response.DealerCards, 1)
	assert.Equal(t, int(domain.Card(10)), response.DealerCards[0].Code)
	assert.Equal(t, 10, response.DealerScore, "only the upcard may count toward the visible score")
	assert.Len(t, response.PlayerCards, 2)
	assert.Equal(t, 14, response.PlayerScore)
	assert.Equal(t, 2, response.CardsRemaining)
}

func TestGameResponseRevealsDealerHandWhenFinished(t *testing.T) {
	game := &domain.Game{
		ID:          7,
		Address:     "0xabc",
		PlayerCards: domain.Hand{domain.Card(5), domain.Card(9)},
		DealerCards: domain.Hand{domain.Card(10), domain.Card(23)},
		PlayerScore: 14,
		DealerScore: 20,
		Status:      domain.GameStatusDealerWins,
	}

	response := newGameResponse(game)

	assert.False(t, response.DealerHoleHidden)
	assert.Len(t, response.DealerCards, 2)
	assert.Equal(t, 20, response.DealerScore)
	assert.Equal(t, "dealer_wins", response.Status)
}
