package blackjack

import (
	"fmt"

	"blackjack/pkg/deck"
)

// Pile is where a hand draws its cards from
type Pile interface {
	// Deal removes count cards from the top of the pile
	Deal(count int) ([]deck.Card, error)
}

// Hand is the collection of cards dealt to a single participant
type Hand struct {
	role  Role
	name  string
	cards []deck.Card
	score int

	// concealed is true while the dealer's second card is face down
	concealed bool
}

// NewHand returns an empty hand for the role
func NewHand(role Role) (*Hand, error) {
	if !role.valid() {
		return nil, InvalidRoleError(role)
	}

	return &Hand{
		role:      role,
		name:      role.Label(),
		cards:     make([]deck.Card, 0, 5),
		concealed: role == RoleDealer,
	}, nil
}

// Draw takes count cards (default 1) from the pile and rescores the hand
// The drawn cards are returned in the order they were dealt. At most one count may be given.
func (h *Hand) Draw(pile Pile, count ...int) ([]deck.Card, error) {
	if len(count) > 1 {
		return nil, ErrInvalidDrawCount
	}

	n := 1
	if len(count) == 1 {
		n = count[0]
	}

	if n < 1 {
		return nil, ErrInvalidDrawCount
	}

	cards, err := pile.Deal(n)
	if err != nil {
		return nil, fmt.Errorf("%s could not draw %d card(s): %w", h.name, n, err)
	}

	h.cards = append(h.cards, cards...)
	h.score = Score(h.cards)

	return cards, nil
}

// Score returns the score as of the last draw
func (h *Hand) Score() int {
	return h.score
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)

	return cards
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Role returns the participant's role
func (h *Hand) Role() Role {
	return h.role
}

// Name returns the display name of the participant
func (h *Hand) Name() string {
	return h.name
}

// IsConcealed returns true if the dealer's hole card is still face down
func (h *Hand) IsConcealed() bool {
	return h.concealed
}

// Reveal turns the dealer's hole card face up
func (h *Hand) Reveal() {
	h.concealed = false
}

// IsBust returns true if the score is over 21
func (h *Hand) IsBust() bool {
	return h.score > blackjackScore
}

// IsBlackjack returns true if the score is exactly 21
func (h *Hand) IsBlackjack() bool {
	return h.score == blackjackScore
}

func (h *Hand) String() string {
	return h.plan().String()
}
