// Package fsm implements deterministic finite-state machines (DFSMs):
// parsing a single-line textual encoding into a validated machine,
// evaluating input strings, pruning unreachable states, Moore-style
// minimization, and canonical relabeling.
//
// What:
//
//   - Parse / New: build a DFSM from its string encoding or from explicit
//     components. Three validators run at construction time (referential
//     integrity, totality, epsilon-freedom); no partially built machine is
//     ever observable.
//   - Compute: evaluate whether an input string belongs to the machine's
//     language.
//   - RemoveUnreachableStates: restrict a machine to the forward closure of
//     its initial state.
//   - Minimize: prune unreachable states, then merge behaviorally
//     indistinguishable states via partition refinement (Moore's algorithm).
//   - ToCanonicForm: relabel states by deterministic traversal order so that
//     two minimal machines recognizing the same language produce
//     byte-identical encodings.
//   - Encode: serialize a machine back to its single-line encoding; the
//     exact inverse of Parse for canonically ordered input.
//
// Why:
//   - Compare regular languages structurally (minimize, canonicalize, then
//     compare encodings byte-for-byte; see the equiv package)
//   - Validate hand-written or generated machine descriptions early, with a
//     precise error taxonomy
//   - Evaluate membership over validated machines with no mid-run failure
//     modes
//
// Key Types:
//
//   - Symbol: a single input character; the Epsilon sentinel marks
//     transitions a DFSM must never carry
//   - State: an integer-identified, totally ordered machine state
//   - Alphabet: an ordered symbol set with a stable iteration order
//   - Transition: an immutable (from, symbol, to) triple with a total order
//   - TransitionFunction: the deterministic (state, symbol) → state mapping
//     plus its validators
//   - DFSM: the immutable aggregate; all derivations return new machines
//
// Encoding grammar (fields separated by '/', whitespace insignificant):
//
//	<states> / <alphabet> / <transitions> / <initial> / <accepting>
//
// e.g. "0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1". The accepting field may be
// empty or absent.
//
// Complexity (n states, k alphabet symbols):
//
//   - Parse/Encode:              Time O(n·k log(n·k)), Memory O(n·k)
//   - Compute:                   Time O(|input|), Memory O(1)
//   - RemoveUnreachableStates:   Time O(n·k), Memory O(n)
//   - Minimize:                  Time O(n³·k) worst case, Memory O(n)
//   - ToCanonicForm:             Time O(n·k log(n·k)), Memory O(n·k)
//
// Errors:
//
//   - ErrMalformedEncoding, ErrMalformedAlphabet    syntax failures
//   - ErrUnknownStateID                             undeclared id referenced
//   - ErrDanglingStateReference, ErrUnknownSymbol   referential integrity
//   - ErrEpsilonNotAllowed                          epsilon transition present
//   - ErrIncompleteTransitionFunction               missing (state, symbol) mapping
//   - ErrSymbolNotInAlphabet                        Compute input outside the alphabet
//
// Concurrency: a DFSM is immutable after construction. Compute never mutates
// shared state, and every derivation allocates fresh containers, so machines
// may be shared and transformed from many goroutines without locking.
package fsm
