// Package dfsm is an in-memory toolkit for deterministic finite-state
// machines — parse a textual encoding into a machine, validate it,
// evaluate inputs, minimize, and produce canonical forms.
//
// 🚀 What is dfsm?
//
//	A small, focused library that brings together:
//		• Core primitives: states, alphabets, transitions, and a validated DFSM type
//		• A single-line encoding grammar with a byte-exact encoder
//		• Acceptance evaluation over validated machines
//		• Unreachable-state pruning
//		• Moore-style minimization (partition refinement)
//		• Canonical relabeling, so equal languages yield equal encodings
//
// ✨ Why choose dfsm?
//
//   - Minimal API, clear, intuitive naming
//   - Immutable machines – safe to share across goroutines without locks
//   - Deterministic output – every encoder and algorithm is order-stable
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under two subpackages:
//
//	fsm/   — the DFSM type, its grammar, validators, and graph algorithms
//	equiv/ — language-equivalence checking via minimize + canonicalize
//
// Quick example encoding:
//
//	0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1
//
//	two states 0 and 1, alphabet {a, b}, four transitions, initial state 0,
//	accepting set {1} — the machine accepts strings with an odd count of 'b'
//	since the last 'a' (see fsm package examples).
//
//	go get github.com/katalvlaran/dfsm
package dfsm
