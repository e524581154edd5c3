// File: minimize.go
// Role: Moore-style state minimization via partition refinement.
// Determinism:
//   - States are scanned in ascending id order and blocks are numbered in
//     creation order, so the same machine always yields the same partition
//     labeling and the same representative per block.

package fsm

import (
	"maps"

	"github.com/bits-and-blooms/bitset"
)

// Minimize returns a new DFSM that recognizes the same language as the
// receiver with a minimal number of states: unreachable states are pruned
// first, then behaviorally indistinguishable states are merged by partition
// refinement (Moore's algorithm). The receiver is not modified, and
// Minimize(Minimize(m)) is structurally equal to Minimize(m).
//
// Complexity: O(n³·k) worst case over n states and k alphabet symbols.
func (m *DFSM) Minimize() *DFSM {
	return m.RemoveUnreachableStates().mergeEquivalentStates()
}

// mergeEquivalentStates collapses each equivalence class of the receiver to
// its representative and rebuilds the machine through that mapping.
// Multiple original transitions that collapse onto the same triple dedup
// naturally when the rewritten set is re-indexed.
func (m *DFSM) mergeEquivalentStates() *DFSM {
	repOf := m.equivalentStates()

	merged := make([]Transition, 0, m.delta.Len())
	for _, t := range m.delta.Transitions() {
		merged = append(merged, Transition{
			From:   repOf[t.From],
			Symbol: t.Symbol,
			To:     repOf[t.To],
		})
	}

	states := make(map[State]struct{}, len(repOf))
	for _, rep := range repOf {
		states[rep] = struct{}{}
	}

	accepting := make(map[State]struct{}, len(m.accepting))
	for s := range m.accepting {
		accepting[repOf[s]] = struct{}{}
	}

	// Representatives of equivalent states transition to representatives of
	// equivalent successors, so the rebuilt function is total and
	// deterministic over the representative set.
	return newTrusted(states, m.alphabet, NewTransitionFunction(merged), repOf[m.initial], accepting)
}

// equivalentStates maps each state to the representative of its equivalence
// class under language equivalence.
//
// Each partition round is a map from state to an explicit integer block id,
// with blocks numbered in creation order; "same block in the previous round"
// is always a comparison of these ids, never of state values. Block b's
// representative is the state that created it (the first member found in the
// ascending-id scan).
//
// The initial partition splits accepting from non-accepting states. Each
// refinement round rebuilds the partition: a state joins the block of the
// first existing representative it is compatible with, where compatible
// means same previous-round block and, for every alphabet symbol,
// previous-round-equivalent successors; with no compatible representative the
// state opens a new block. Rounds strictly refine the partition, so the loop
// reaches a fixed point in at most n rounds.
func (m *DFSM) equivalentStates() map[State]State {
	ord := newStateOrdinals(m.states)
	symbols := m.alphabet.Symbols()

	// Accepting-state membership over dense ordinals.
	acc := bitset.New(uint(len(ord.states)))
	for s := range m.accepting {
		acc.Set(ord.rank[s])
	}

	// Initial partition: accepting vs non-accepting, empty blocks skipped,
	// block ids handed out in order of first appearance.
	block := make(map[State]int, len(ord.states))
	reps := make([]State, 0, 2)
	accBlock, nonBlock := -1, -1
	for _, s := range ord.states {
		if acc.Test(ord.rank[s]) {
			if accBlock < 0 {
				accBlock = len(reps)
				reps = append(reps, s)
			}
			block[s] = accBlock
		} else {
			if nonBlock < 0 {
				nonBlock = len(reps)
				reps = append(reps, s)
			}
			block[s] = nonBlock
		}
	}

	for {
		next := make(map[State]int, len(ord.states))
		nextReps := make([]State, 0, len(reps))

		for _, s := range ord.states {
			assigned := false
			for b, rep := range nextReps {
				if block[s] == block[rep] && m.successorsEquivalent(block, symbols, s, rep) {
					next[s] = b
					assigned = true

					break
				}
			}
			if !assigned {
				next[s] = len(nextReps)
				nextReps = append(nextReps, s)
			}
		}

		// Fixed point: blocks are labeled by first member in scan order in
		// every round, so equal partitions produce identical maps.
		stable := maps.Equal(block, next)
		block, reps = next, nextReps
		if stable {
			break
		}
	}

	repOf := make(map[State]State, len(block))
	for s, b := range block {
		repOf[s] = reps[b]
	}

	return repOf
}

// successorsEquivalent reports whether s and rep step into the same prev
// block on every alphabet symbol.
func (m *DFSM) successorsEquivalent(prev map[State]int, symbols []Symbol, s, rep State) bool {
	for _, sym := range symbols {
		if prev[m.delta.next(s, sym)] != prev[m.delta.next(rep, sym)] {
			return false
		}
	}

	return true
}
