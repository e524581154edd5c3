package fsm

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Transition is an immutable (from, symbol, to) triple. A Symbol value of
// Epsilon marks a transition that fires on no input; validators reject such
// transitions on deterministic machines, but the triple itself can carry one
// so that the violation is reportable.
type Transition struct {
	// From is the state this transition exits.
	From State

	// Symbol is the input symbol that triggers this transition,
	// or Epsilon for none.
	Symbol Symbol

	// To is the state this transition enters.
	To State
}

// Compare orders transitions by from-state id, then symbol (Epsilon sorts
// before any real symbol), then to-state id. It returns a negative number,
// zero, or a positive number as t sorts before, equal to, or after other.
// This total order is what makes encoded transition lists — and therefore
// canonical-form encodings — comparable byte-for-byte.
func (t Transition) Compare(other Transition) int {
	if t.From != other.From {
		return int(t.From) - int(other.From)
	}
	if t.Symbol != other.Symbol {
		// Epsilon is the zero Symbol, so plain numeric order already places
		// it before every real symbol.
		return int(t.Symbol) - int(other.Symbol)
	}

	return int(t.To) - int(other.To)
}

// Encode renders the transition as "from,symbol,to"; the symbol is empty for
// Epsilon.
func (t Transition) Encode() string {
	return t.From.Encode() + "," + t.Symbol.Encode() + "," + t.To.Encode()
}

// String renders the transition for human-readable output, e.g. "(0, a, 1)".
func (t Transition) String() string {
	return "(" + t.From.String() + ", " + t.Symbol.String() + ", " + t.To.String() + ")"
}

// transitionTuple is a parsed-but-unresolved transition: state ids have not
// yet been checked against the machine's declared state set.
type transitionTuple struct {
	fromID int
	symbol Symbol
	toID   int
}

// parseTransitionTuple parses one "from,symbol,to" tuple. Whitespace around
// each component is ignored; an empty symbol component means Epsilon.
func parseTransitionTuple(text string) (transitionTuple, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return transitionTuple{}, fmt.Errorf("fsm: transition tuple %q: %w", text, ErrMalformedEncoding)
	}

	fromID, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return transitionTuple{}, fmt.Errorf("fsm: transition source %q: %w", parts[0], ErrMalformedEncoding)
	}

	toID, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return transitionTuple{}, fmt.Errorf("fsm: transition target %q: %w", parts[2], ErrMalformedEncoding)
	}

	symbol := Epsilon
	if symText := strings.TrimSpace(parts[1]); symText != "" {
		if utf8.RuneCountInString(symText) != 1 {
			return transitionTuple{}, fmt.Errorf("fsm: transition symbol %q: %w", symText, ErrMalformedEncoding)
		}
		r, _ := utf8.DecodeRuneInString(symText)
		symbol = Symbol(r)
	}

	return transitionTuple{fromID: fromID, symbol: symbol, toID: toID}, nil
}

// parseTransitionTupleList parses a ";"-separated transition field. The empty
// (or all-whitespace) field yields no tuples.
func parseTransitionTupleList(text string) ([]transitionTuple, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	parts := strings.Split(text, ";")
	tuples := make([]transitionTuple, 0, len(parts))

	var (
		tuple transitionTuple
		err   error
	)
	for _, part := range parts {
		if tuple, err = parseTransitionTuple(part); err != nil {
			return nil, err
		}
		tuples = append(tuples, tuple)
	}

	return tuples, nil
}
