package blackjack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecision_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Hit", DecisionHit.String())
	a.Equal("Stand", DecisionStand.String())

	a.PanicsWithValue("invalid decision: 0", func() {
		_ = Decision(0).String()
	})
}

func TestDecisionFromString(t *testing.T) {
	test := func(t *testing.T, input string, expected Decision) {
		t.Helper()
		decision, err := DecisionFromString(input)
		assert.NoError(t, err)
		assert.Equal(t, expected, decision)
	}

	test(t, "h", DecisionHit)
	test(t, "H", DecisionHit)
	test(t, " hit\n", DecisionHit)
	test(t, "s", DecisionStand)
	test(t, "S", DecisionStand)
	test(t, "Stand", DecisionStand)

	for _, input := range []string{"", "x", "hs", "double"} {
		decision, err := DecisionFromString(input)
		assert.Equal(t, Decision(0), decision)
		assert.Equal(t, InvalidDecisionError(input), err)
	}

	_, err := DecisionFromString("q")
	assert.EqualError(t, err, `invalid decision "q": enter h to hit or s to stand`)
}

func TestDecision_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(DecisionStand)
	assert.NoError(t, err)
	assert.Equal(t, `"stand"`, string(b))
}
