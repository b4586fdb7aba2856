package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"blackjack/pkg/playable/blackjack"
)

// console plays the round through a terminal
type console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool

	// lines is fed by a single reader goroutine and closed once reading fails
	lines   chan string
	readErr error

	// logged is how many of the round's log messages have been printed
	logged int
}

func newConsole(in *bufio.Reader, out io.Writer, interactive bool) *console {
	c := &console{
		in:          in,
		out:         out,
		interactive: interactive,
		lines:       make(chan string),
	}

	go c.readLines()
	return c
}

// readLines reads until the input fails, readErr is set before lines is closed
func (c *console) readLines() {
	for {
		str, err := c.in.ReadString('\n')
		if str != "" {
			c.lines <- strings.TrimRight(str, "\r\n")
		}

		if err != nil {
			c.readErr = err
			close(c.lines)
			return
		}
	}
}

// Show prints what happened since the last call, followed by the table
func (c *console) Show(r *blackjack.Round) {
	for _, lm := range r.Log().Since(c.logged) {
		_, _ = fmt.Fprintf(c.out, "> %s\n", lm)
	}
	c.logged = r.Log().Len()

	_, _ = fmt.Fprintf(c.out, "\n%s\n\n[%s]\n\n", r, r.PileSummary())
}

func (c *console) Rejected(_ string, err error) {
	_, _ = fmt.Fprintln(c.out, err)
}

// RequestDecision asks the player to hit or stand
// It returns early with the context's error if the context is done while waiting.
func (c *console) RequestDecision(ctx context.Context, _ *blackjack.Round) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if c.interactive {
		_, _ = fmt.Fprint(c.out, "Hit or Stand? (h/s): ")
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", c.readErr
		}

		return line, nil
	}
}
