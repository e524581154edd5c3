package fsm

import (
	"fmt"
	"slices"
)

// TransitionFunction is a deterministic mapping from (state, symbol) to a
// single successor state, indexed as state → (symbol → state).
//
// Construction never fails on its own: determinism is structural (a later
// duplicate (from, symbol) entry overwrites an earlier one), and all other
// well-formedness checks are delegated to the three Verify methods, which the
// owning DFSM runs at construction time.
type TransitionFunction struct {
	delta map[State]map[Symbol]State
}

// NewTransitionFunction builds a transition function from a set of
// transitions.
// Complexity: O(len(transitions)).
func NewTransitionFunction(transitions []Transition) *TransitionFunction {
	delta := make(map[State]map[Symbol]State, len(transitions))
	for _, t := range transitions {
		row, ok := delta[t.From]
		if !ok {
			row = make(map[Symbol]State)
			delta[t.From] = row
		}
		row[t.Symbol] = t.To
	}

	return &TransitionFunction{delta: delta}
}

// Apply returns the successor of from on sym. On a validated machine every
// (state, symbol) pair over the state set and alphabet is mapped, so a
// missing mapping is a contract violation; it is reported as an explicit
// ErrIncompleteTransitionFunction rather than a bogus zero state.
func (tf *TransitionFunction) Apply(from State, sym Symbol) (State, error) {
	to, ok := tf.delta[from][sym]
	if !ok {
		return 0, fmt.Errorf("fsm: no transition from state %s on symbol %s: %w",
			from, sym, ErrIncompleteTransitionFunction)
	}

	return to, nil
}

// next returns the successor of from on sym, assuming the mapping exists.
// Callers inside this package invoke it only on machines whose totality has
// already been verified.
func (tf *TransitionFunction) next(from State, sym Symbol) State {
	return tf.delta[from][sym]
}

// Maps reports whether a transition from from on sym exists.
func (tf *TransitionFunction) Maps(from State, sym Symbol) bool {
	_, ok := tf.delta[from][sym]

	return ok
}

// Len returns the number of mappings in the function.
func (tf *TransitionFunction) Len() int {
	n := 0
	for _, row := range tf.delta {
		n += len(row)
	}

	return n
}

// Transitions reconstructs the explicit transition set from the index — the
// inverse of NewTransitionFunction. The result is a fresh slice in the triple
// total order (from, then symbol with Epsilon first, then to), so iteration
// over it is deterministic.
func (tf *TransitionFunction) Transitions() []Transition {
	transitions := make([]Transition, 0, tf.Len())
	for from, row := range tf.delta {
		for sym, to := range row {
			transitions = append(transitions, Transition{From: from, Symbol: sym, To: to})
		}
	}
	slices.SortFunc(transitions, Transition.Compare)

	return transitions
}

// VerifyMapping checks referential integrity: every from/to state must belong
// to states and every non-Epsilon symbol must belong to alphabet. Violations
// fail with ErrDanglingStateReference or ErrUnknownSymbol.
//
// Epsilon entries are deliberately not a symbol violation here; they are
// VerifyNoEpsilon's to report, so that each validator names exactly one
// failure mode.
func (tf *TransitionFunction) VerifyMapping(states []State, alphabet Alphabet) error {
	members := make(map[State]struct{}, len(states))
	for _, s := range states {
		members[s] = struct{}{}
	}

	// Iterate in triple order so the reported violation is deterministic.
	for _, t := range tf.Transitions() {
		if _, ok := members[t.From]; !ok {
			return fmt.Errorf("fsm: transition source state %s is not part of the machine: %w",
				t.From, ErrDanglingStateReference)
		}
		if _, ok := members[t.To]; !ok {
			return fmt.Errorf("fsm: transition target state %s is not part of the machine: %w",
				t.To, ErrDanglingStateReference)
		}
		if t.Symbol != Epsilon && !alphabet.Contains(t.Symbol) {
			return fmt.Errorf("fsm: transition symbol %s is not part of the machine's alphabet: %w",
				t.Symbol, ErrUnknownSymbol)
		}
	}

	return nil
}

// VerifyTotal checks totality: every (state, symbol) pair over the full
// states × alphabet cross-product must be mapped. A missing pair fails with
// ErrIncompleteTransitionFunction.
func (tf *TransitionFunction) VerifyTotal(states []State, alphabet Alphabet) error {
	ordered := slices.Clone(states)
	slices.Sort(ordered)

	for _, sym := range alphabet.Symbols() {
		for _, state := range ordered {
			if !tf.Maps(state, sym) {
				return fmt.Errorf("fsm: missing transition from state %s on symbol %s: %w",
					state, sym, ErrIncompleteTransitionFunction)
			}
		}
	}

	return nil
}

// VerifyNoEpsilon checks epsilon-freedom: no mapping may be keyed on Epsilon.
// A violation fails with ErrEpsilonNotAllowed.
func (tf *TransitionFunction) VerifyNoEpsilon() error {
	for from, row := range tf.delta {
		if _, ok := row[Epsilon]; ok {
			return fmt.Errorf("fsm: state %s has an epsilon transition: %w", from, ErrEpsilonNotAllowed)
		}
	}

	return nil
}

// Encode serializes the transition set in the triple total order, each triple
// as "from,symbol,to", joined with ";". The ordering is load-bearing: it is
// what makes canonical-form encodings comparable byte-for-byte.
func (tf *TransitionFunction) Encode() string {
	return joinTransitions(tf.Transitions(), ";", Transition.Encode)
}

// String renders the function in set notation, e.g. "{(0, a, 1), (1, b, 0)}".
func (tf *TransitionFunction) String() string {
	return "{" + joinTransitions(tf.Transitions(), ", ", Transition.String) + "}"
}

// joinTransitions renders transitions via render, with sep between entries.
func joinTransitions(transitions []Transition, sep string, render func(Transition) string) string {
	var buf []byte
	for i, t := range transitions {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = append(buf, render(t)...)
	}

	return string(buf)
}
