// File: dfsm.go
// Role: the DFSM aggregate — construction (grammar and components),
//       validation, encoding, and acceptance evaluation.
// Determinism:
//   - Encode renders state ids sorted, the alphabet in its stable order, and
//     transitions in the triple total order, so equal machines encode equally.
// Concurrency:
//   - A DFSM is immutable after construction; accessors return copies.

package fsm

import (
	"fmt"
	"strconv"
	"strings"
)

// DFSM is a deterministic finite-state machine: a state set, an alphabet, a
// total transition function, an initial state, and an accepting subset.
//
// A DFSM is born fully validated via Parse or New and is immutable
// afterwards: algorithms that "modify" a machine (Minimize, ToCanonicForm,
// RemoveUnreachableStates) always return a new DFSM and never touch the
// receiver's containers. Machines are therefore safe to share and evaluate
// concurrently without locking.
type DFSM struct {
	states    map[State]struct{}
	alphabet  Alphabet
	delta     *TransitionFunction
	initial   State
	accepting map[State]struct{}
}

// Parse builds a DFSM from its string encoding.
//
// The grammar has five '/'-separated fields — states, alphabet, transitions,
// initial state, accepting states — with whitespace around fields and tokens
// ignored:
//
//	0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1
//
// The accepting field may be empty, and the trailing '/' may be omitted
// entirely: a machine with no accepting states is legal.
//
// Steps:
//  1. Split on '/' and check the field count.
//  2. Build the state-id domain from field 1.
//  3. Parse the alphabet from field 2.
//  4. Parse each transition tuple from field 3, resolving its ids against the
//     domain (an undeclared id fails with ErrUnknownStateID).
//  5. Resolve the initial id, then the optional accepting-id list.
//  6. Run the three transition-function validators; any failure aborts
//     construction, so no partially built machine escapes.
func Parse(encoding string) (*DFSM, error) {
	fields := strings.Split(encoding, "/")
	if len(fields) != 5 && len(fields) != 4 {
		return nil, fmt.Errorf("fsm: expected 5 fields separated by '/', got %d: %w",
			len(fields), ErrMalformedEncoding)
	}

	// State-id domain.
	ids, err := ParseStateIDList(fields[0])
	if err != nil {
		return nil, err
	}
	states := make(map[State]struct{}, len(ids))
	for _, id := range ids {
		states[id] = struct{}{}
	}

	// Alphabet.
	alphabet, err := ParseAlphabet(fields[1])
	if err != nil {
		return nil, err
	}

	// Transitions, resolved against the declared domain.
	tuples, err := parseTransitionTupleList(fields[2])
	if err != nil {
		return nil, err
	}
	transitions := make([]Transition, 0, len(tuples))
	for _, tuple := range tuples {
		if _, ok := states[State(tuple.fromID)]; !ok {
			return nil, fmt.Errorf("fsm: transition references undeclared state %d: %w",
				tuple.fromID, ErrUnknownStateID)
		}
		if _, ok := states[State(tuple.toID)]; !ok {
			return nil, fmt.Errorf("fsm: transition references undeclared state %d: %w",
				tuple.toID, ErrUnknownStateID)
		}
		transitions = append(transitions, Transition{
			From:   State(tuple.fromID),
			Symbol: tuple.symbol,
			To:     State(tuple.toID),
		})
	}

	// Initial state.
	initialID, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return nil, fmt.Errorf("fsm: initial state %q: %w", fields[3], ErrMalformedEncoding)
	}
	initial := State(initialID)
	if _, ok := states[initial]; !ok {
		return nil, fmt.Errorf("fsm: initial state %d is undeclared: %w", initialID, ErrUnknownStateID)
	}

	// Accepting states (field may be absent or empty).
	accepting := make(map[State]struct{})
	if len(fields) == 5 {
		acceptingIDs, err := ParseStateIDList(fields[4])
		if err != nil {
			return nil, err
		}
		for _, id := range acceptingIDs {
			if _, ok := states[id]; !ok {
				return nil, fmt.Errorf("fsm: accepting state %s is undeclared: %w", id, ErrUnknownStateID)
			}
			accepting[id] = struct{}{}
		}
	}

	m := newTrusted(states, alphabet, NewTransitionFunction(transitions), initial, accepting)
	if err = m.verify(); err != nil {
		return nil, err
	}

	return m, nil
}

// New builds a DFSM from explicit components. The initial state must be a
// member of states and accepting must be a subset of states
// (ErrDanglingStateReference otherwise); the transition function must pass
// referential integrity, totality, and epsilon-freedom.
func New(states []State, alphabet Alphabet, delta *TransitionFunction, initial State, accepting []State) (*DFSM, error) {
	if delta == nil {
		return nil, ErrNilTransitionFunction
	}

	members := make(map[State]struct{}, len(states))
	for _, s := range states {
		members[s] = struct{}{}
	}

	if _, ok := members[initial]; !ok {
		return nil, fmt.Errorf("fsm: initial state %s is not part of the machine: %w",
			initial, ErrDanglingStateReference)
	}

	acceptingSet := make(map[State]struct{}, len(accepting))
	for _, s := range accepting {
		if _, ok := members[s]; !ok {
			return nil, fmt.Errorf("fsm: accepting state %s is not part of the machine: %w",
				s, ErrDanglingStateReference)
		}
		acceptingSet[s] = struct{}{}
	}

	m := newTrusted(members, alphabet, delta, initial, acceptingSet)
	if err := m.verify(); err != nil {
		return nil, err
	}

	return m, nil
}

// newTrusted assembles a DFSM without validation. It is reserved for
// construction paths that prove the invariants themselves: the public
// constructors run verify immediately after, and the derivation algorithms
// (RemoveUnreachableStates, Minimize, ToCanonicForm) build machines whose
// invariants hold by construction.
func newTrusted(states map[State]struct{}, alphabet Alphabet, delta *TransitionFunction, initial State, accepting map[State]struct{}) *DFSM {
	return &DFSM{
		states:    states,
		alphabet:  alphabet,
		delta:     delta,
		initial:   initial,
		accepting: accepting,
	}
}

// verify runs the three transition-function validators in order: referential
// integrity, totality, epsilon-freedom.
func (m *DFSM) verify() error {
	states := sortedStates(m.states)

	if err := m.delta.VerifyMapping(states, m.alphabet); err != nil {
		return err
	}
	if err := m.delta.VerifyTotal(states, m.alphabet); err != nil {
		return err
	}

	return m.delta.VerifyNoEpsilon()
}

// States returns the machine's states in ascending id order.
func (m *DFSM) States() []State { return sortedStates(m.states) }

// Alphabet returns the machine's alphabet.
func (m *DFSM) Alphabet() Alphabet { return m.alphabet }

// Transitions returns the machine's transitions in the triple total order.
func (m *DFSM) Transitions() []Transition { return m.delta.Transitions() }

// Initial returns the machine's initial state.
func (m *DFSM) Initial() State { return m.initial }

// AcceptingStates returns the machine's accepting states in ascending id order.
func (m *DFSM) AcceptingStates() []State { return sortedStates(m.accepting) }

// IsAccepting reports whether s is an accepting state of the machine.
func (m *DFSM) IsAccepting(s State) bool {
	_, ok := m.accepting[s]

	return ok
}

// Encode serializes the machine in the five-field grammar, the exact inverse
// of Parse for canonically ordered input: state ids sorted, alphabet in its
// stable order, transitions in the triple total order, accepting ids sorted.
func (m *DFSM) Encode() string {
	return EncodeStateSet(m.states) + "/" +
		m.alphabet.Encode() + "/" +
		m.delta.Encode() + "/" +
		m.initial.Encode() + "/" +
		EncodeStateSet(m.accepting)
}

// Compute reports whether input belongs to the machine's language: starting
// at the initial state it advances through the transition function one
// character at a time and accepts iff the final state is accepting.
//
// Every character of input must belong to the alphabet; a character outside
// it fails with ErrSymbolNotInAlphabet rather than silently producing a wrong
// answer. On alphabet-restricted input Compute cannot fail: construction-time
// validation guarantees every (state, symbol) pair it encounters is mapped.
func (m *DFSM) Compute(input string) (bool, error) {
	current := m.initial
	for _, r := range input {
		sym := Symbol(r)
		if !m.alphabet.Contains(sym) {
			return false, fmt.Errorf("fsm: input character %q: %w", string(r), ErrSymbolNotInAlphabet)
		}

		next, err := m.delta.Apply(current, sym)
		if err != nil {
			return false, err
		}
		current = next
	}

	return m.IsAccepting(current), nil
}

// String renders the machine in human-readable set notation, one component
// per line (K states, Σ alphabet, δ transitions, s initial, A accepting).
// This rendering is for diagnostics only; Encode is the machine-readable
// format.
func (m *DFSM) String() string {
	var sb strings.Builder
	sb.WriteString("K = ")
	sb.WriteString(prettyStateSet(m.states))
	sb.WriteString("\nΣ = ")
	sb.WriteString(m.alphabet.String())
	sb.WriteString("\nδ = ")
	sb.WriteString(m.delta.String())
	sb.WriteString("\ns = ")
	sb.WriteString(m.initial.String())
	sb.WriteString("\nA = ")
	sb.WriteString(prettyStateSet(m.accepting))
	sb.WriteByte('\n')

	return sb.String()
}
