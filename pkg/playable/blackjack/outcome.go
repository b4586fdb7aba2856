package blackjack

// Outcome is the result of the round from a non-dealer participant's point of view
type Outcome string

// Outcome constants
const (
	OutcomePending Outcome = ""
	OutcomeWin     Outcome = "win"
	OutcomeLose    Outcome = "lose"
	OutcomeTie     Outcome = "tie"
)

// DetermineOutcome compares a participant's final score against the dealer's
func DetermineOutcome(score, dealerScore int) Outcome {
	bust := score > blackjackScore
	dealerBust := dealerScore > blackjackScore

	switch {
	case bust && !dealerBust:
		return OutcomeLose
	case dealerBust && !bust:
		return OutcomeWin
	case bust && dealerBust:
		return OutcomeTie
	case score > dealerScore:
		return OutcomeWin
	case score < dealerScore:
		return OutcomeLose
	}

	return OutcomeTie
}
