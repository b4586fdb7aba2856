package playable

import (
	"fmt"
	"strings"
	"time"

	"blackjack/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is a single entry in a game's history
// If Participant is empty, assume it's a general statement, otherwise the message reads like "{participant} did X, Y, Z"
type LogMessage struct {
	UUID        string      `json:"uuid"`
	Participant string      `json:"participant,omitempty"`
	Cards       []deck.Card `json:"cards,omitempty"`
	Message     string      `json:"message"`
	Time        time.Time   `json:"time"`
}

// String renders the message, substituting {} with the participant name
func (l *LogMessage) String() string {
	msg := l.Message
	if l.Participant != "" {
		msg = strings.ReplaceAll(msg, "{}", l.Participant)
	}

	if len(l.Cards) == 0 {
		return msg
	}

	cards := make([]string, len(l.Cards))
	for i, card := range l.Cards {
		cards[i] = card.String()
	}

	return fmt.Sprintf("%s: %s", msg, strings.Join(cards, " "))
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(participant string, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:        uuid.New().String(),
		Participant: participant,
		Message:     fmt.Sprintf(format, a...),
		Time:        time.Now(),
	}
}

// CardLogMessage returns a new LogMessage that shows the cards involved
func CardLogMessage(participant string, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(participant, format, a...)
	if len(cards) > 0 {
		lm.Cards = append([]deck.Card(nil), cards...)
	}

	return lm
}

// Log is an in-memory, append-only history of a single game
type Log struct {
	messages []*LogMessage
}

// Add appends messages to the log
func (l *Log) Add(messages ...*LogMessage) {
	l.messages = append(l.messages, messages...)
}

// Messages returns every message recorded so far
func (l *Log) Messages() []*LogMessage {
	return l.messages
}

// Since returns the messages recorded after the first n
func (l *Log) Since(n int) []*LogMessage {
	if n >= len(l.messages) {
		return nil
	}

	if n < 0 {
		n = 0
	}

	return l.messages[n:]
}

// Len returns how many messages are in the log
func (l *Log) Len() int {
	return len(l.messages)
}
