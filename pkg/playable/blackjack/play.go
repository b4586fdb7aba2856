package blackjack

import (
	"context"
	"errors"
)

// Decider supplies the player's decisions
type Decider interface {
	// RequestDecision blocks until the player answers, normally with "h" or "s"
	RequestDecision(ctx context.Context, r *Round) (string, error)
}

// Table presents the round to the player
type Table interface {
	// Show is called when the round starts, after every draw and once the round is settled
	Show(r *Round)

	// Rejected is called when the player's answer was not understood
	Rejected(input string, err error)
}

// Play runs the round to completion and returns the player's outcome
// Unrecognized answers are rejected and the player is asked again. Running out of
// cards aborts the round.
func (r *Round) Play(ctx context.Context, decider Decider, table Table) (Outcome, error) {
	table.Show(r)

	for r.State == RoundStatePlayerTurn {
		if err := ctx.Err(); err != nil {
			return OutcomePending, err
		}

		input, err := decider.RequestDecision(ctx, r)
		if err != nil {
			return OutcomePending, err
		}

		decision, err := DecisionFromString(input)
		if err != nil {
			var invalid InvalidDecisionError
			if !errors.As(err, &invalid) {
				return OutcomePending, err
			}

			r.logger.WithField("input", input).Warn("invalid decision")
			table.Rejected(input, err)
			continue
		}

		if err := r.Apply(decision); err != nil {
			return OutcomePending, err
		}

		table.Show(r)
	}

	for r.State == RoundStateDealerTurn {
		if err := r.DealerStep(); err != nil {
			return OutcomePending, err
		}

		table.Show(r)
	}

	return r.Outcome, nil
}
