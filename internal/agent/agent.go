// Package agent implements the conversational command interpreter. Each
// input line is classified into an intent by an ordered rule table, the
// extracted arguments are applied to the ledger, and a plain-language
// response is returned.
package agent

import (
	"fmt"

	"fjacquet/budget-chat/internal/ledger"
	"fjacquet/budget-chat/internal/logging"
	"fjacquet/budget-chat/internal/matcher"
)

// Farewell is the session-terminating response. The caller must stop issuing
// commands when Handle returns exactly this string; the string comparison is
// part of the contract.
const Farewell = "Goodbye."

// Message is one conversation turn.
type Message struct {
	Role    string
	Content string
}

// Saver persists the ledger. Satisfied by store.StateStore.
type Saver interface {
	Save(l *ledger.Ledger) error
}

// Agent holds the ledger handle, the category matcher and the conversation
// history. It is stateless across calls apart from those: each Handle call
// is a self-contained parse → mutate → persist → respond transaction.
type Agent struct {
	ledger  *ledger.Ledger
	matcher *matcher.Matcher
	store   Saver
	logger  logging.Logger
	history []Message
	rules   []rule
}

// New creates an agent over the given ledger.
func New(l *ledger.Ledger, m *matcher.Matcher, s Saver, logger logging.Logger) *Agent {
	a := &Agent{
		ledger:  l,
		matcher: m,
		store:   s,
		logger:  logger,
	}
	a.rules = a.ruleTable()
	return a
}

// Ledger returns the agent's ledger handle.
func (a *Agent) Ledger() *ledger.Ledger {
	return a.ledger
}

// History returns the conversation turns recorded so far.
func (a *Agent) History() []Message {
	return a.history
}

// Handle processes one input line and returns the response. Conditions
// caused by the user's text are converted into hint responses and never
// surface as errors; the error return is reserved for faults that must not
// be masked, such as persistence failures.
func (a *Agent) Handle(text string) (string, error) {
	a.history = append(a.history, Message{Role: "user", Content: text})

	resp, err := a.dispatch(text)
	if err != nil {
		return "", err
	}

	a.history = append(a.history, Message{Role: "agent", Content: resp})
	return resp, nil
}

func (a *Agent) dispatch(text string) (string, error) {
	for _, r := range a.rules {
		resp, matched, err := r.apply(text)
		if err != nil {
			return "", fmt.Errorf("%s: %w", r.name, err)
		}
		if matched {
			a.logger.WithFields(
				logging.Field{Key: logging.FieldIntent, Value: r.name},
				logging.Field{Key: logging.FieldInput, Value: text},
			).Debug("Handled command")
			return resp, nil
		}
	}

	return "I didn't understand. Type 'help' for commands.", nil
}

// save persists the ledger after a mutating command.
func (a *Agent) save() error {
	return a.store.Save(a.ledger)
}
