package blackjack

import "fmt"

// Options contains options for starting a round of blackjack
type Options struct {
	// Decks is the number of standard decks shuffled into the pile
	Decks int
	// Computers is the number of computer-controlled hands seated after the player
	Computers int
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Decks:     6,
		Computers: 0,
	}
}

// Validate returns an error if a round cannot be started with the options
func (o Options) Validate() error {
	if o.Decks < 1 {
		return DeckCountError(o.Decks)
	}

	if o.Computers < 0 {
		return fmt.Errorf("computers must be >= 0, got %d", o.Computers)
	}

	return nil
}
