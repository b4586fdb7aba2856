package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"blackjack/internal/config"
	"blackjack/internal/rng"
	"blackjack/pkg/playable/blackjack"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var decks = flag.Int("decks", 0, "number of decks in the pile (overrides config)")
var computers = flag.Int("computers", -1, "number of computer players (overrides config)")
var seed = flag.Int64("seed", 0, "shuffle seed, 0 for a random shuffle")
var printJSON = flag.Bool("json", false, "print the settled round as JSON")

func main() {
	flag.Parse()
	setupLogger()

	opts := optionsFromConfig(config.Instance())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	round, err := blackjack.NewRound(logrus.StandardLogger(), opts, rng.New(*seed))
	if err != nil {
		logrus.WithError(err).Fatal("could not start round")
	}

	c := newConsole(bufio.NewReader(os.Stdin), os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
	outcome, err := round.Play(ctx, c, c)
	if err != nil {
		logrus.WithError(err).Fatal("round aborted")
	}

	if *printJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(round); err != nil {
			logrus.WithError(err).Fatal("could not encode round")
		}
	}

	fmt.Printf("Outcome: %s\n", outcome)
}

func optionsFromConfig(cfg config.Config) blackjack.Options {
	opts := cfg.Options()

	if *decks > 0 {
		opts.Decks = *decks
	}

	if *computers >= 0 {
		opts.Computers = *computers
	}

	return opts
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	// logs share the terminal with the table, keep them out of stdout
	logrus.SetOutput(os.Stderr)
	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
