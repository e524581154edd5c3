package fsm

// ToCanonicForm returns a canonically relabeled version of the receiver:
// a depth-first traversal from the initial state, visiting successors in the
// alphabet's stable order, assigns fresh ids 0, 1, 2, … in first-discovery
// order. The receiver is not modified.
//
// Traversal order is fully determined by the initial state, the alphabet
// order, and the transition function, so two machines with isomorphic
// reachable transition graphs relabel identically — the canonical encodings
// of two minimal machines recognizing the same language are byte-identical.
//
// Accepting states the traversal never reaches are dropped; they cannot
// affect the language.
func (m *DFSM) ToCanonicForm() *DFSM {
	symbols := m.alphabet.Symbols()

	relabel := make(map[State]State, len(m.states))
	todo := make([]State, 0, len(m.states))

	free := State(0)
	relabel[m.initial] = free
	free++
	todo = append(todo, m.initial)

	canonical := make([]Transition, 0, m.delta.Len())

	var top, next State
	for len(todo) > 0 {
		top = todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		for _, sym := range symbols {
			next = m.delta.next(top, sym)
			if _, seen := relabel[next]; !seen {
				relabel[next] = free
				free++
				todo = append(todo, next)
			}
			canonical = append(canonical, Transition{
				From:   relabel[top],
				Symbol: sym,
				To:     relabel[next],
			})
		}
	}

	states := make(map[State]struct{}, len(relabel))
	for _, s := range relabel {
		states[s] = struct{}{}
	}

	accepting := make(map[State]struct{}, len(m.accepting))
	for s := range m.accepting {
		if c, ok := relabel[s]; ok {
			accepting[c] = struct{}{}
		}
	}

	// The traversal emits one transition per (reached state, symbol) pair,
	// so the relabeled function is total over the relabeled state set.
	return newTrusted(states, m.alphabet, NewTransitionFunction(canonical), relabel[m.initial], accepting)
}
