package fsm

import (
	"github.com/bits-and-blooms/bitset"
)

// stateOrdinals maps each state to a dense ordinal (its rank in ascending id
// order), so that per-state bookkeeping can live in a bitset instead of a
// map. State ids are arbitrary integers; ordinals are always 0..n-1.
type stateOrdinals struct {
	states []State
	rank   map[State]uint
}

// newStateOrdinals indexes the given state set.
func newStateOrdinals(set map[State]struct{}) stateOrdinals {
	states := sortedStates(set)
	rank := make(map[State]uint, len(states))
	for i, s := range states {
		rank[s] = uint(i)
	}

	return stateOrdinals{states: states, rank: rank}
}

// RemoveUnreachableStates returns a new DFSM restricted to the subgraph
// reachable from the initial state: states become the reachable set,
// transitions keep only triples with both endpoints reachable, accepting
// becomes accepting ∩ reachable; the alphabet and initial state are
// unchanged. The receiver is not modified.
//
// Complexity: O(n·k) over n states and k alphabet symbols.
func (m *DFSM) RemoveUnreachableStates() *DFSM {
	reachable := m.reachableStates()

	// Keep only transitions whose endpoints are both reachable.
	kept := make([]Transition, 0, m.delta.Len())
	for _, t := range m.delta.Transitions() {
		if _, ok := reachable[t.From]; !ok {
			continue
		}
		if _, ok := reachable[t.To]; !ok {
			continue
		}
		kept = append(kept, t)
	}

	// Restrict the accepting set.
	accepting := make(map[State]struct{}, len(m.accepting))
	for s := range m.accepting {
		if _, ok := reachable[s]; ok {
			accepting[s] = struct{}{}
		}
	}

	// Reachability is closed under the transition function and contains the
	// initial state, so the restriction is again a valid total machine.
	return newTrusted(reachable, m.alphabet, NewTransitionFunction(kept), m.initial, accepting)
}

// reachableStates computes the forward closure of the initial state under all
// alphabet symbols by fixed-point expansion: repeatedly follow every symbol
// out of the current frontier until no new state turns up. Visited
// bookkeeping lives in a bitset over dense state ordinals.
func (m *DFSM) reachableStates() map[State]struct{} {
	ord := newStateOrdinals(m.states)
	symbols := m.alphabet.Symbols()

	visited := bitset.New(uint(len(ord.states)))
	visited.Set(ord.rank[m.initial])
	frontier := []State{m.initial}

	var (
		state State
		next  State
	)
	for len(frontier) > 0 {
		state = frontier[0]
		frontier = frontier[1:]

		for _, sym := range symbols {
			next = m.delta.next(state, sym)
			if visited.Test(ord.rank[next]) {
				continue
			}
			visited.Set(ord.rank[next])
			frontier = append(frontier, next)
		}
	}

	reachable := make(map[State]struct{}, visited.Count())
	for i, ok := visited.NextSet(0); ok; i, ok = visited.NextSet(i + 1) {
		reachable[ord.states[i]] = struct{}{}
	}

	return reachable
}
