package domain

import "math/rand"

// Deck is an ordered sequence of distinct cards. A game never shares its deck
// with another game or request; the remaining cards are persisted on the Game
// record and consumed in place.
type Deck []Card

// NewShuffledDeck returns all 52 cards in uniformly random order using a
// Fisher-Yates shuffle. No cryptographic fairness is required here.
func NewShuffledDeck() Deck {
	deck := make(Deck, DeckSize)
	for i := range deck {
		deck[i] = Card(i + 1)
	}
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Draw removes and returns the top card. A full deck always covers a complete
// single game, so exhaustion signals a logic defect, not a playable state.
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return 0, NewAppError(ErrCodeDeckExhausted, "Deck has no cards left", 500, nil)
	}
	card := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck.
func (d Deck) Remaining() int {
	return len(d)
}
