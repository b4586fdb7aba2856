package blackjack

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type scriptedDecider struct {
	answers []string
	asked   int
	err     error
}

func (s *scriptedDecider) RequestDecision(_ context.Context, _ *Round) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	answer := s.answers[s.asked]
	s.asked++
	return answer, nil
}

type recordingTable struct {
	shown    []string
	rejected []string
}

func (r *recordingTable) Show(round *Round) {
	r.shown = append(r.shown, round.String())
}

func (r *recordingTable) Rejected(input string, err error) {
	r.rejected = append(r.rejected, input)
}

func TestRound_Play(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()

	r, err := newRound(logger, DefaultOptions(), stackedPile("2h,10d,3c,7s,4d"))
	a.NoError(err)

	decider := &scriptedDecider{answers: []string{"x", "H", "s"}}
	table := &recordingTable{}

	outcome, err := r.Play(context.Background(), decider, table)
	a.NoError(err)
	a.Equal(OutcomeLose, outcome)
	a.Equal(3, decider.asked)
	a.Equal([]string{"x"}, table.rejected)
	a.Equal(4, len(table.shown))
	a.Equal("Dealer: 10♦ ??\n\nPlayer: 2♥ 3♣\nScore: 5", table.shown[0])
	a.Equal("Dealer: 10♦ 7♠\nScore: 17\n\nPlayer: 2♥ 3♣ 4♦\nScore: 9", table.shown[3])

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "invalid decision" {
			warned = true
			a.Equal("x", entry.Data["input"])
		}
	}
	a.True(warned)

	last := hook.LastEntry()
	a.Equal("round settled", last.Message)
	a.Equal(OutcomeLose, last.Data["outcome"])
}

func TestRound_Play_bust(t *testing.T) {
	a := assert.New(t)
	r := createTestRound(t, "10h,10d,6c,7s,9d")

	table := &recordingTable{}
	outcome, err := r.Play(context.Background(), &scriptedDecider{answers: []string{"h"}}, table)
	a.NoError(err)
	a.Equal(OutcomeLose, outcome)
	a.Equal(2, len(table.shown))
	a.Equal("Dealer: 10♦ 7♠\nScore: 17\n\nPlayer: 10♥ 6♣ 9♦\nScore: 25 BUST", table.shown[1])
}

func TestRound_Play_deciderError(t *testing.T) {
	r := createTestRound(t, "10h,10d,9c,7s")

	outcome, err := r.Play(context.Background(), &scriptedDecider{err: errors.New("stdin closed")}, &recordingTable{})
	assert.EqualError(t, err, "stdin closed")
	assert.Equal(t, OutcomePending, outcome)
	assert.Equal(t, RoundStatePlayerTurn, r.State)
}

func TestRound_Play_canceled(t *testing.T) {
	r := createTestRound(t, "10h,10d,9c,7s")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := r.Play(ctx, &scriptedDecider{answers: []string{"s"}}, &recordingTable{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, OutcomePending, outcome)
}

func TestRound_Play_emptyPile(t *testing.T) {
	r := createTestRound(t, "10h,10d,6c,6s")

	_, err := r.Play(context.Background(), &scriptedDecider{answers: []string{"s"}}, &recordingTable{})
	assert.EqualError(t, err, "Dealer could not draw 1 card(s): not enough cards left in the pile")
}
