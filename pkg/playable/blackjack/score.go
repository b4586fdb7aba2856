package blackjack

import (
	"fmt"

	"blackjack/pkg/deck"
)

const blackjackScore = 21

// cardPoints returns the fixed point value of a non-ace card
func cardPoints(card deck.Card) int {
	switch card.Rank {
	case 2, 3, 4, 5, 6, 7, 8, 9, 10:
		return card.Rank
	case deck.Jack, deck.Queen, deck.King:
		return 10
	}

	panic(fmt.Sprintf("card %s has no fixed point value", deck.CardToString(card)))
}

// Score returns the total for the cards
// At most one ace counts as 11, and only when the non-ace cards total less than 11.
// Every other ace counts as 1. The ace assignment is never re-optimized beyond that.
func Score(cards []deck.Card) int {
	base := 0
	aces := 0
	for _, card := range cards {
		if card.IsAce() {
			aces++
			continue
		}

		base += cardPoints(card)
	}

	if aces == 0 {
		return base
	}

	if base >= 11 {
		return base + aces
	}

	return base + 11 + (aces - 1)
}
