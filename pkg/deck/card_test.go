package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2♥", Card{Rank: 2, Suit: Hearts}.String())
	a.Equal("10♦", Card{Rank: 10, Suit: Diamonds}.String())
	a.Equal("J♣", Card{Rank: Jack, Suit: Clubs}.String())
	a.Equal("Q♦", Card{Rank: Queen, Suit: Diamonds}.String())
	a.Equal("K♠", Card{Rank: King, Suit: Spades}.String())
	a.Equal("A♠", Card{Rank: Ace, Suit: Spades}.String())
}

func TestSuit_Symbol(t *testing.T) {
	a := assert.New(t)
	a.Equal("♥", Hearts.Symbol())
	a.Equal("?", Suit("stars").Symbol())
}

func TestCard_unknownSuit(t *testing.T) {
	a := assert.New(t)

	var card Card
	a.NoError(json.Unmarshal([]byte(`{"rank":14,"suit":"stars"}`), &card))
	a.NotPanics(func() {
		a.Equal("A?", card.String())
	})

	a.NotPanics(func() {
		a.Equal("10?", CardToString(Card{Rank: 10}))
	})
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: Ace, Suit: Spades}, CardFromString("14s"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, CardFromString("10H"))
	a.True(CardFromString("14c").IsAce())
	a.False(CardFromString("13c").IsAce())

	a.PanicsWithValue("could not parse card: 1s", func() {
		CardFromString("1s")
	})

	a.PanicsWithValue("could not parse card: 5x", func() {
		CardFromString("5x")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("14s, 2d,13h")
	a.Equal(3, len(cards))
	a.Equal("14s,2d,13h", CardsToString(cards))
	a.Equal([]Card{}, CardsFromString(""))
}
