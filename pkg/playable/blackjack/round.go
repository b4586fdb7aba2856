package blackjack

import (
	"fmt"
	"strings"

	"blackjack/internal/rng"
	"blackjack/pkg/deck"
	"blackjack/pkg/playable"

	"github.com/sirupsen/logrus"
)

// dealerStandsOn is the score at which the dealer (and every computer) stops drawing
const dealerStandsOn = 17

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateDealing is while the initial two cards are dealt to everyone
	RoundStateDealing RoundState = "dealing"

	// RoundStatePlayerTurn means we are waiting on the player to hit or stand
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the computers and then the dealer are drawing to 17
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateSettled means the outcome has been decided
	RoundStateSettled RoundState = "settled"
)

// Round is a single round of blackjack between the player and the dealer
type Round struct {
	State RoundState

	// Outcome is the player's result, set once the round is settled
	Outcome Outcome

	player           *Hand
	computers        []*Hand
	dealer           *Hand
	computerOutcomes []Outcome

	pile   *deck.Pile
	logger logrus.FieldLogger
	log    playable.Log
}

// NewRound shuffles a new pile and deals the opening cards
func NewRound(logger logrus.FieldLogger, options Options, gen rng.Generator) (*Round, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	return newRound(logger, options, deck.NewPile(options.Decks, gen))
}

func newRound(logger logrus.FieldLogger, options Options, pile *deck.Pile) (*Round, error) {
	player, err := NewHand(RolePlayer)
	if err != nil {
		return nil, err
	}

	dealer, err := NewHand(RoleDealer)
	if err != nil {
		return nil, err
	}

	computers := make([]*Hand, options.Computers)
	for i := range computers {
		computer, err := NewHand(RoleComputer)
		if err != nil {
			return nil, err
		}

		computer.name = fmt.Sprintf("%s %d", computer.name, i+1)
		computers[i] = computer
	}

	r := &Round{
		State:     RoundStateDealing,
		player:    player,
		computers: computers,
		dealer:    dealer,
		pile:      pile,
		logger:    logger,
	}

	logger.WithFields(logrus.Fields{
		"decks":     pile.NumDecks(),
		"computers": len(computers),
		"pileHash":  pile.HashCode(),
	}).Debug("new round")

	if err := r.deal(); err != nil {
		return nil, err
	}

	return r, nil
}

// deal gives two cards to everyone, one at a time, with the dealer receiving last
func (r *Round) deal() error {
	r.log.Add(playable.SimpleLogMessage("", "New round with %s", r.pile))

	for i := 0; i < 2; i++ {
		for _, hand := range r.participants() {
			if err := r.draw(hand); err != nil {
				return err
			}
		}

		if err := r.draw(r.dealer); err != nil {
			return err
		}
	}

	// a natural blackjack skips the player's decisions
	if r.player.Score() < blackjackScore {
		r.setState(RoundStatePlayerTurn)
		return nil
	}

	r.endPlayerTurn()
	return nil
}

// Hit draws a card for the player
// The player's turn ends automatically once the score reaches 21 or more.
func (r *Round) Hit() error {
	if r.State != RoundStatePlayerTurn {
		return fmt.Errorf("cannot hit from state: %s", r.State)
	}

	if err := r.draw(r.player); err != nil {
		return err
	}

	if r.player.Score() >= blackjackScore {
		r.endPlayerTurn()
	}

	return nil
}

// Stand ends the player's turn
func (r *Round) Stand() error {
	if r.State != RoundStatePlayerTurn {
		return fmt.Errorf("cannot stand from state: %s", r.State)
	}

	r.log.Add(playable.SimpleLogMessage(r.player.Name(), "{} stands on %d", r.player.Score()))
	r.endPlayerTurn()
	return nil
}

// Apply performs the player's decision
func (r *Round) Apply(decision Decision) error {
	switch decision {
	case DecisionHit:
		return r.Hit()
	case DecisionStand:
		return r.Stand()
	}

	return fmt.Errorf("unknown decision: %d", decision)
}

func (r *Round) endPlayerTurn() {
	r.dealer.Reveal()
	r.log.Add(playable.CardLogMessage(r.dealer.Name(), r.dealer.Cards(), "{} reveals"))

	if r.anyStanding() {
		r.setState(RoundStateDealerTurn)
		return
	}

	r.settle()
}

// DealerStep draws a single card for the next computer or the dealer
// Once every automated hand is on 17 or more, the round is settled.
func (r *Round) DealerStep() error {
	if r.State != RoundStateDealerTurn {
		return fmt.Errorf("cannot play the dealer from state: %s", r.State)
	}

	if hand := r.nextAutomatedDraw(); hand != nil {
		return r.draw(hand)
	}

	r.settle()
	return nil
}

// PlayDealer runs DealerStep until the round is settled
func (r *Round) PlayDealer() error {
	for r.State == RoundStateDealerTurn {
		if err := r.DealerStep(); err != nil {
			return err
		}
	}

	return nil
}

// nextAutomatedDraw returns the hand that must draw next, or nil if everyone is done
func (r *Round) nextAutomatedDraw() *Hand {
	for _, computer := range r.computers {
		if computer.Score() < dealerStandsOn {
			return computer
		}
	}

	// the dealer only draws if someone is left to play against
	if r.dealer.Score() < dealerStandsOn && r.anyStanding() {
		return r.dealer
	}

	return nil
}

func (r *Round) settle() {
	automated := make([]*Hand, 0, len(r.computers)+1)
	automated = append(automated, r.computers...)
	for _, hand := range append(automated, r.dealer) {
		if hand.IsBust() {
			r.log.Add(playable.SimpleLogMessage(hand.Name(), "{} busts with %d", hand.Score()))
		} else if r.State == RoundStateDealerTurn {
			r.log.Add(playable.SimpleLogMessage(hand.Name(), "{} stands on %d", hand.Score()))
		}
	}

	r.Outcome = DetermineOutcome(r.player.Score(), r.dealer.Score())
	r.computerOutcomes = make([]Outcome, len(r.computers))
	for i, computer := range r.computers {
		r.computerOutcomes[i] = DetermineOutcome(computer.Score(), r.dealer.Score())
	}

	r.log.Add(playable.SimpleLogMessage(r.player.Name(), "{} %s with %d against %d", describeOutcome(r.Outcome), r.player.Score(), r.dealer.Score()))
	r.logger.WithFields(logrus.Fields{
		"outcome":     r.Outcome,
		"playerScore": r.player.Score(),
		"dealerScore": r.dealer.Score(),
	}).Info("round settled")

	r.setState(RoundStateSettled)
}

func describeOutcome(o Outcome) string {
	switch o {
	case OutcomeWin:
		return "wins"
	case OutcomeLose:
		return "loses"
	}

	return "ties"
}

func (r *Round) draw(hand *Hand) error {
	cards, err := hand.Draw(r.pile)
	if err != nil {
		r.logger.WithError(err).WithField("participant", hand.Name()).Error("could not draw")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"participant": hand.Name(),
		"cards":       deck.CardsToString(cards),
		"score":       hand.Score(),
		"cardsLeft":   r.pile.Size(),
	}).Debug("draw")

	if hand.hidesHoleCard() {
		r.log.Add(playable.SimpleLogMessage(hand.Name(), "{} drew a face-down card"))
		return nil
	}

	r.log.Add(playable.CardLogMessage(hand.Name(), cards, "{} drew"))
	return nil
}

func (r *Round) setState(state RoundState) {
	r.logger.WithFields(logrus.Fields{
		"from": r.State,
		"to":   state,
	}).Debug("state change")

	r.State = state
}

// participants returns the non-dealer hands in seating order
func (r *Round) participants() []*Hand {
	hands := make([]*Hand, 0, len(r.computers)+1)
	hands = append(hands, r.player)
	return append(hands, r.computers...)
}

// anyStanding returns true if at least one non-dealer hand has not busted
func (r *Round) anyStanding() bool {
	for _, hand := range r.participants() {
		if !hand.IsBust() {
			return true
		}
	}

	return false
}

// Player returns the human player's hand
func (r *Round) Player() *Hand {
	return r.player
}

// Dealer returns the dealer's hand
func (r *Round) Dealer() *Hand {
	return r.dealer
}

// Computers returns the computer-controlled hands in seating order
func (r *Round) Computers() []*Hand {
	return r.computers
}

// ComputerOutcomes returns each computer's result, once the round is settled
func (r *Round) ComputerOutcomes() []Outcome {
	return r.computerOutcomes
}

// IsSettled returns true if the outcome has been decided
func (r *Round) IsSettled() bool {
	return r.State == RoundStateSettled
}

// PileSummary describes the pile, such as "6 decks, 300 cards left"
func (r *Round) PileSummary() string {
	return r.pile.String()
}

// Log returns the round's history
func (r *Round) Log() *playable.Log {
	return &r.log
}

func (r *Round) String() string {
	hands := make([]string, 0, len(r.computers)+2)
	hands = append(hands, r.dealer.String())
	for _, hand := range r.participants() {
		hands = append(hands, hand.String())
	}

	return strings.Join(hands, "\n\n")
}
