package blackjack

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decision is what the player chooses to do on their turn
type Decision int

// Decision constants
const (
	DecisionHit Decision = iota + 1
	DecisionStand
)

func (d Decision) String() string {
	switch d {
	case DecisionHit:
		return "Hit"
	case DecisionStand:
		return "Stand"
	}

	panic(fmt.Sprintf("invalid decision: %d", d))
}

// MarshalJSON encodes the JSON
func (d Decision) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(d.String()))
}

// DecisionFromString parses the player's answer
// h/hit and s/stand are accepted, ignoring case and surrounding whitespace.
func DecisionFromString(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return DecisionHit, nil
	case "s", "stand":
		return DecisionStand, nil
	}

	return 0, InvalidDecisionError(s)
}
