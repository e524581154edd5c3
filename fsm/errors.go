// Package fsm: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the fsm
// package. All constructors and validators return these sentinels and tests
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package fsm

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fsm: ..." for consistency and to allow easy
// grepping across logs. Sites that need context wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match with errors.Is.
//
// All of these are raised at construction time, with one exception:
// ErrSymbolNotInAlphabet guards the Compute precondition, and
// ErrIncompleteTransitionFunction doubles as the contract-violation error for
// TransitionFunction.Apply on a mapping that does not exist.

var (
	// ErrMalformedEncoding indicates the machine encoding does not split into
	// the expected fields or a sub-field's syntax is invalid (bad integer,
	// wrong transition tuple arity, multi-character symbol).
	ErrMalformedEncoding = errors.New("fsm: malformed machine encoding")

	// ErrMalformedAlphabet indicates the alphabet field contains a token that
	// is not a single character.
	ErrMalformedAlphabet = errors.New("fsm: malformed alphabet")

	// ErrUnknownStateID indicates a state id referenced by the transitions,
	// initial, or accepting fields was not declared in the state-id field.
	ErrUnknownStateID = errors.New("fsm: unknown state id")

	// ErrDanglingStateReference indicates a transition (or the initial or
	// accepting component on the component-constructor path) references a
	// state outside the declared state set.
	ErrDanglingStateReference = errors.New("fsm: dangling state reference")

	// ErrUnknownSymbol indicates a transition uses a symbol outside the
	// declared alphabet.
	ErrUnknownSymbol = errors.New("fsm: symbol not in alphabet")

	// ErrEpsilonNotAllowed indicates a transition keyed on Epsilon;
	// deterministic machines must have none.
	ErrEpsilonNotAllowed = errors.New("fsm: epsilon transition not allowed")

	// ErrIncompleteTransitionFunction indicates some (state, symbol) pair
	// lacks a successor: the function is not total.
	ErrIncompleteTransitionFunction = errors.New("fsm: incomplete transition function")

	// ErrSymbolNotInAlphabet indicates Compute was fed an input character
	// outside the machine's alphabet.
	ErrSymbolNotInAlphabet = errors.New("fsm: input symbol not in alphabet")

	// ErrNilTransitionFunction indicates a nil *TransitionFunction was passed
	// to the component constructor.
	ErrNilTransitionFunction = errors.New("fsm: transition function is nil")
)
