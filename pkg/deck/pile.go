package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"blackjack/internal/rng"
)

// ErrEmptyPile is returned when more cards are requested than are left in the pile
var ErrEmptyPile = errors.New("not enough cards left in the pile")

// CardsPerDeck is the number of cards in a standard deck
const CardsPerDeck = 52

// Pile is the shared drawable pile, built from one or more shuffled decks
// The top of the pile is the end of the slice.
type Pile struct {
	cards    []Card
	numDecks int
}

// NewPile returns numDecks standard decks, concatenated and shuffled with the generator
func NewPile(numDecks int, gen rng.Generator) *Pile {
	if numDecks < 1 {
		panic(fmt.Sprintf("numDecks must be >= 1, got %d", numDecks))
	}

	cards := make([]Card, 0, numDecks*CardsPerDeck)
	for i := 0; i < numDecks; i++ {
		cards = append(cards, buildDeck()...)
	}

	// Fisher-Yates over the full combined sequence
	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return &Pile{
		cards:    cards,
		numDecks: numDecks,
	}
}

// NewStackedPile returns an unshuffled pile that deals the cards in the order provided
// This should only be used by tests and replays.
func NewStackedPile(cards ...Card) *Pile {
	stacked := make([]Card, len(cards))
	for i, card := range cards {
		stacked[len(cards)-1-i] = card
	}

	return &Pile{
		cards:    stacked,
		numDecks: (len(cards) + CardsPerDeck - 1) / CardsPerDeck,
	}
}

func buildDeck() []Card {
	cards := make([]Card, 0, CardsPerDeck)
	for _, suit := range Suits {
		cards = append(cards, Card{Rank: Ace, Suit: suit})
		for rank := 2; rank <= King; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Size returns the number of cards left in the pile
func (p *Pile) Size() int {
	return len(p.cards)
}

// NumDecks returns how many decks the pile was built from
func (p *Pile) NumDecks() int {
	return p.numDecks
}

// CanDeal returns true if there are {want} cards left in the pile
func (p *Pile) CanDeal(want int) bool {
	return len(p.cards) >= want
}

// Deal removes count cards from the top of the pile and returns them in the order they were removed
// If there are not enough cards, ErrEmptyPile is returned and the pile is left untouched.
func (p *Pile) Deal(count int) ([]Card, error) {
	if count < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", count)
	}

	if !p.CanDeal(count) {
		return nil, ErrEmptyPile
	}

	dealt := make([]Card, 0, count)
	for i := 0; i < count; i++ {
		n := len(p.cards) - 1
		dealt = append(dealt, p.cards[n])
		p.cards = p.cards[:n]
	}

	return dealt, nil
}

// HashCode returns a SHA1 hash code of the remaining cards.
func (p *Pile) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range p.cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

func (p *Pile) String() string {
	decks := "decks"
	if p.numDecks == 1 {
		decks = "deck"
	}

	return fmt.Sprintf("%d %s, %d cards left", p.numDecks, decks, len(p.cards))
}
