package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShuffledDeckContainsAllCards(t *testing.T) {
	deck := NewShuffledDeck()
	assert.Equal(t, DeckSize, deck.Remaining())

	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		assert.True(t, c.Valid())
		assert.False(t, seen[c], "card %v dealt twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, DeckSize)
}

func TestDeckDrawConsumesCards(t *testing.T) {
	deck := NewShuffledDeck()
	drawn := make(map[Card]bool, DeckSize)

	for i := 0; i < DeckSize; i++ {
		card, err := deck.Draw()
		assert.NoError(t, err)
		assert.False(t, drawn[card])
		drawn[card] = true
	}

	assert.Equal(t, 0, deck.Remaining())

	_, err := deck.Draw()
	assert.Error(t, err)
	assert.True(t, IsErrorCode(err, ErrCodeDeckExhausted))
}

func TestDeckDrawPopsFromTail(t *testing.T) {
	deck := Deck{Card(3), Card(7), Card(42)}

	card, err := deck.Draw()
	assert.NoError(t, err)
	assert.Equal(t, Card(42), card)
	assert.Equal(t, 2, deck.Remaining())
}
