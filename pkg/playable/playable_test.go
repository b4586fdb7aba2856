package playable

import (
	"testing"
	"time"

	"blackjack/pkg/deck"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage("", "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Equal(t, "", lm.Participant)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, lm.Time.After(time.Now()))
	assert.Nil(t, lm.Cards)

	_, err := uuid.Parse(lm.UUID)
	assert.NoError(t, err)
	assert.NotEqual(t, lm.UUID, SimpleLogMessage("", "test").UUID)
}

func TestLogMessage_String(t *testing.T) {
	a := assert.New(t)

	lm := SimpleLogMessage("Dealer", "{} stands on %d", 18)
	a.Equal("Dealer stands on 18", lm.String())

	lm = CardLogMessage("Player", deck.CardsFromString("14s,13h"), "{} drew")
	a.Equal("Player drew: A♠ K♥", lm.String())

	lm = CardLogMessage("", nil, "round started")
	a.Nil(lm.Cards)
	a.Equal("round started", lm.String())
}

func TestLog(t *testing.T) {
	a := assert.New(t)

	var l Log
	a.Equal(0, l.Len())
	a.Nil(l.Since(0))

	l.Add(SimpleLogMessage("", "one"), SimpleLogMessage("", "two"))
	l.Add(SimpleLogMessage("", "three"))
	a.Equal(3, l.Len())
	a.Equal(3, len(l.Messages()))

	since := l.Since(1)
	a.Equal(2, len(since))
	a.Equal("two", since[0].Message)
	a.Equal("three", since[1].Message)
	a.Equal(3, len(l.Since(-1)))
	a.Nil(l.Since(3))
}
