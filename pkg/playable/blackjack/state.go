package blackjack

import (
	"encoding/json"

	"blackjack/pkg/deck"
)

// HandState is what the table is allowed to see of a hand
type HandState struct {
	Name       string      `json:"name"`
	Role       Role        `json:"role"`
	Cards      []deck.Card `json:"cards"`
	FaceDown   int         `json:"faceDown,omitempty"`
	Score      *int        `json:"score,omitempty"`
	Annotation string      `json:"annotation,omitempty"`
}

type roundJSON struct {
	State          RoundState   `json:"state"`
	Outcome        Outcome      `json:"outcome,omitempty"`
	Dealer         *HandState   `json:"dealer"`
	Player         *HandState   `json:"player"`
	Computers      []*HandState `json:"computers,omitempty"`
	CardsRemaining int          `json:"cardsRemaining"`
}

// State returns the visible state of the hand
func (h *Hand) State() *HandState {
	hs := &HandState{
		Name: h.name,
		Role: h.role,
	}

	if h.hidesHoleCard() {
		hs.Cards = h.Cards()[:1]
		hs.FaceDown = 1
		return hs
	}

	score := h.score
	hs.Cards = h.Cards()
	hs.Score = &score
	hs.Annotation = annotation(score)

	return hs
}

// MarshalJSON provides custom JSON marshalling for round
func (r *Round) MarshalJSON() ([]byte, error) {
	var computers []*HandState
	for _, computer := range r.computers {
		computers = append(computers, computer.State())
	}

	return json.Marshal(roundJSON{
		State:          r.State,
		Outcome:        r.Outcome,
		Dealer:         r.dealer.State(),
		Player:         r.player.State(),
		Computers:      computers,
		CardsRemaining: r.pile.Size(),
	})
}
