package blackjack

import (
	"errors"
	"fmt"
)

// ErrInvalidDrawCount is returned when a hand is asked to draw fewer than one card, or given more than one count
var ErrInvalidDrawCount = errors.New("must draw a single count of at least one card")

// InvalidRoleError is returned when a hand is created for an unknown participant role
type InvalidRoleError string

func (i InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role %q: must be player, computer or dealer", string(i))
}

// InvalidDecisionError is returned when the player's answer is neither hit nor stand
type InvalidDecisionError string

func (i InvalidDecisionError) Error() string {
	return fmt.Sprintf("invalid decision %q: enter h to hit or s to stand", string(i))
}

// DeckCountError is an error on the number of decks in the pile
type DeckCountError int

func (d DeckCountError) Error() string {
	return fmt.Sprintf("decks must be >= 1, got %d", int(d))
}
