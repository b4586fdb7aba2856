package blackjack

import (
	"strconv"
	"strings"
)

// faceDown is shown in place of the dealer's hole card
const faceDown = "??"

// renderPlan is everything needed to print a hand
type renderPlan struct {
	label      string
	cards      []string
	showScore  bool
	score      int
	annotation string
}

// plan decides what the table is allowed to see of the hand
func (h *Hand) plan() renderPlan {
	p := renderPlan{label: h.name}

	if h.hidesHoleCard() {
		p.cards = []string{h.cards[0].String(), faceDown}
		return p
	}

	p.cards = make([]string, len(h.cards))
	for i, card := range h.cards {
		p.cards[i] = card.String()
	}

	p.showScore = true
	p.score = h.score
	p.annotation = annotation(h.score)

	return p
}

// hidesHoleCard is true while the dealer's second card is face down
func (h *Hand) hidesHoleCard() bool {
	return h.role == RoleDealer && h.concealed && len(h.cards) == 2
}

func annotation(score int) string {
	switch {
	case score > blackjackScore:
		return "BUST"
	case score == blackjackScore:
		return "BLACKJACK"
	}

	return ""
}

func (p renderPlan) String() string {
	var sb strings.Builder
	sb.WriteString(p.label)
	sb.WriteString(":")
	if len(p.cards) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(p.cards, " "))
	}

	if !p.showScore {
		return sb.String()
	}

	sb.WriteString("\nScore: ")
	sb.WriteString(strconv.Itoa(p.score))
	if p.annotation != "" {
		sb.WriteString(" ")
		sb.WriteString(p.annotation)
	}

	return sb.String()
}
