package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// cardOf builds a club of the given rank (1 = Ace .. 13 = King). Suit is
// cosmetic, so clubs are as good as any.
func cardOf(rank int) Card {
	return Card(rank)
}

func TestCardValues(t *testing.T) {
	tests := []struct {
		name  string
		card  Card
		rank  int
		value int
		isAce bool
	}{
		{"Ace_Of_Clubs", Card(1), 1, 11, true},
		{"Two_Of_Clubs", Card(2), 2, 2, false},
		{"Ten_Of_Clubs", Card(10), 10, 10, false},
		{"Jack_Of_Clubs", Card(11), 11, 10, false},
		{"Queen_Of_Clubs", Card(12), 12, 10, false},
		{"King_Of_Clubs", Card(13), 13, 10, false},
		{"Ace_Of_Diamonds", Card(14), 1, 11, true},
		{"King_Of_Spades", Card(52), 13, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rank, tt.card.Rank())
			assert.Equal(t, tt.value, tt.card.Value())
			assert.Equal(t, tt.isAce, tt.card.IsAce())
			assert.True(t, tt.card.Valid())
		})
	}
}

func TestCardSuitsAcrossDeck(t *testing.T) {
	seen := make(map[string]bool, DeckSize)
	for c := Card(1); c <= DeckSize; c++ {
		seen[c.String()] = true
	}
	assert.Len(t, seen, DeckSize, "all 52 cards must render distinctly")
}

func TestHandScore(t *testing.T) {
	tests := []struct {
		name  string
		hand  Hand
		score int
	}{
		{"No_Aces_Simple_Sum", Hand{cardOf(5), cardOf(9)}, 14},
		{"Two_Aces", Hand{cardOf(1), Card(14)}, 12},
		{"Ace_King_Blackjack", Hand{cardOf(1), cardOf(13)}, 21},
		{"Ten_Ten_Two_Bust", Hand{cardOf(10), Card(23), cardOf(2)}, 22},
		{"Soft_Then_Hard_Ace", Hand{cardOf(1), cardOf(7), cardOf(9)}, 17},
		{"Three_Aces", Hand{Card(1), Card(14), Card(27)}, 13},
		{"Empty_Hand", Hand{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.score, tt.hand.Score())
		})
	}
}

func TestHandScoreOrderIndependent(t *testing.T) {
	forward := Hand{cardOf(1), cardOf(7), cardOf(9), Card(14)}
	backward := Hand{Card(14), cardOf(9), cardOf(7), cardOf(1)}
	assert.Equal(t, forward.Score(), backward.Score())
}

func TestIsSoft17(t *testing.T) {
	tests := []struct {
		name   string
		hand   Hand
		soft17 bool
	}{
		{"Ace_Six_Soft", Hand{cardOf(1), cardOf(6)}, true},
		{"Ten_Seven_Hard", Hand{cardOf(10), cardOf(7)}, false},
		{"Ace_Six_Ten_Hard_17", Hand{cardOf(1), cardOf(6), cardOf(10)}, false},
		{"Ace_Two_Four_Soft", Hand{cardOf(1), cardOf(2), cardOf(4)}, true},
		{"Soft_18_Not_Soft_17", Hand{cardOf(1), cardOf(7)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.soft17, tt.hand.IsSoft17())
		})
	}
}

func TestIsBust(t *testing.T) {
	assert.False(t, Hand{cardOf(10), cardOf(9)}.IsBust())
	assert.False(t, Hand{cardOf(1), cardOf(10), cardOf(10)}.IsBust())
	assert.True(t, Hand{cardOf(10), Card(23), cardOf(2)}.IsBust())
}

func TestAceDemotionOnlyWhileOver21(t *testing.T) {
	// Simple sum minus 10 per demoted ace; demotion stops at 21 or below.
	hand := Hand{cardOf(1), cardOf(1)}
	assert.Equal(t, 12, hand.Score(), "exactly one ace demoted")

	hand = Hand{cardOf(1), cardOf(9)}
	assert.Equal(t, 20, hand.Score(), "no demotion when under 21")
}
