// Package equiv decides language equivalence of deterministic finite-state
// machines built with the fsm package.
//
// What:
//
//   - Equivalent(a, b, opts...): true iff a and b recognize the same
//     language. Both machines are minimized, canonically relabeled, and
//     their encodings compared byte-for-byte — two minimal machines
//     recognize the same language exactly when their canonical encodings
//     are identical.
//
// Why:
//   - Check that a transformation (minimization, hand refactoring, code
//     generation) preserved a machine's language
//   - Deduplicate machines that differ only in state labeling
//
// Options:
//
//   - WithAssumeMinimal()   skip the minimization step when both inputs are
//     already minimal, reachable machines
//
// Errors:
//
//   - ErrNilMachine          a or b is nil
//   - ErrAlphabetMismatch    the machines' alphabets differ (same symbols in
//     the same stable order are required; languages over different alphabets
//     are never compared)
//
// Complexity: dominated by minimization, O(n³·k); with WithAssumeMinimal,
// O(n·k log(n·k)) for canonicalization and encoding.
package equiv
