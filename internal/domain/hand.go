package domain

// Hand is the ordered sequence of cards dealt to one side of a game.
type Hand []Card

// Score returns the best blackjack total for the hand. Aces start at 11 and
// are demoted to 1 one at a time while the total exceeds 21. The result
// depends only on the multiset of cards, not their order.
func (h Hand) Score() int {
	total := 0
	aces := 0
	for _, c := range h {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsSoft reports whether the hand total still counts an Ace as 11.
func (h Hand) IsSoft() bool {
	total := 0
	aces := 0
	for _, c := range h {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return aces > 0
}

// IsSoft17 reports whether the hand is a soft 17, the case where the dealer
// must draw again instead of standing.
func (h Hand) IsSoft17() bool {
	return h.Score() == 17 && h.IsSoft()
}

// IsBust reports whether the hand total exceeds 21.
func (h Hand) IsBust() bool {
	return h.Score() > 21
}
