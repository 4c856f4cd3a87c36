package domain

import "fmt"

// Card identifies one of the 52 cards in a standard deck. Values run 1..52;
// rank and suit are derived, so a hand stored as plain integers survives
// serialization without losing anything.
type Card int

// Suit represents a card suit, used only for rendering.
type Suit int

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

const (
	// DeckSize is the number of cards in a single deck.
	DeckSize = 52
	ranks    = 13
)

var suitSymbols = [...]string{"♣", "♦", "♥", "♠"}
var rankSymbols = [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Rank returns the card rank as 1..13 (1 = Ace, 11..13 = J/Q/K).
func (c Card) Rank() int {
	return (int(c)-1)%ranks + 1
}

// Suit returns the card suit.
func (c Card) Suit() Suit {
	return Suit((int(c) - 1) / ranks)
}

// Value returns the blackjack point value of the card. Number cards count
// face value, J/Q/K count 10 and an Ace counts 11; demoting Aces to 1 is the
// hand evaluator's job, not the card's.
func (c Card) Value() int {
	rank := c.Rank()
	switch {
	case rank == 1:
		return 11
	case rank >= 10:
		return 10
	default:
		return rank
	}
}

// IsAce reports whether the card is an Ace of any suit.
func (c Card) IsAce() bool {
	return c.Rank() == 1
}

// Valid reports whether the card value is inside the 1..52 range.
func (c Card) Valid() bool {
	return c >= 1 && c <= DeckSize
}

// String renders the card like "♠A" or "♦10".
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", int(c))
	}
	return suitSymbols[c.Suit()] + rankSymbols[c.Rank()-1]
}
