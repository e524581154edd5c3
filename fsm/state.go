package fsm

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// State is an immutable machine state identified by an integer id.
// Equality and ordering are by id only, so State is usable as a map key and
// sortable with the standard slices helpers.
type State int

// ID returns the integer identifier of this state.
func (s State) ID() int { return int(s) }

// Encode renders the state id as a decimal string.
func (s State) Encode() string { return strconv.Itoa(int(s)) }

// String renders the state for human-readable output; identical to Encode.
func (s State) String() string { return s.Encode() }

// ParseStateIDList parses a whitespace-separated list of integer state ids.
// The empty (or all-whitespace) input yields an empty list. A token that is
// not a valid integer fails with ErrMalformedEncoding.
func ParseStateIDList(text string) ([]State, error) {
	fields := strings.Fields(text)
	states := make([]State, 0, len(fields))

	var (
		id  int
		err error
	)
	for _, tok := range fields {
		if id, err = strconv.Atoi(tok); err != nil {
			return nil, fmt.Errorf("fsm: state id %q: %w", tok, ErrMalformedEncoding)
		}
		states = append(states, State(id))
	}

	return states, nil
}

// EncodeStateSet renders a set of states as its sorted ids joined by single
// spaces. Sorting makes the rendering deterministic; sets carry no intrinsic
// order of their own.
func EncodeStateSet(set map[State]struct{}) string {
	return joinStates(sortedStates(set), " ")
}

// sortedStates returns the members of set in ascending id order.
func sortedStates(set map[State]struct{}) []State {
	states := make([]State, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	slices.Sort(states)

	return states
}

// joinStates renders states with sep between consecutive encodings.
func joinStates(states []State, sep string) string {
	var sb strings.Builder
	for i, s := range states {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(s.Encode())
	}

	return sb.String()
}

// prettyStateSet renders a set of states in set notation, e.g. "{0, 1}".
func prettyStateSet(set map[State]struct{}) string {
	return "{" + joinStates(sortedStates(set), ", ") + "}"
}
