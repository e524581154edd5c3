package equiv

import (
	"github.com/katalvlaran/dfsm/fsm"
)

// Equivalent reports whether a and b recognize the same language.
//
// Steps:
//  1. Validate inputs and require identical alphabets: a language over
//     {a, b} is never compared with one over {x, y}, and the canonical
//     encoding embeds the alphabet order.
//  2. Minimize both machines (skipped under WithAssumeMinimal).
//  3. Canonically relabel both and compare encodings byte-for-byte.
//
// Two minimal, reachable machines recognize the same language iff their
// canonical-form encodings are textually identical, so the comparison is
// exact — no sampling, no bounded-word search.
func Equivalent(a, b *fsm.DFSM, opts ...Option) (bool, error) {
	// 1. Validate input machines
	if a == nil || b == nil {
		return false, ErrNilMachine
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Alphabets must match exactly, order included
	if !a.Alphabet().Equal(b.Alphabet()) {
		return false, ErrAlphabetMismatch
	}

	// 4. Reduce both machines to minimal form unless the caller vouches
	if !o.AssumeMinimal {
		a = a.Minimize()
		b = b.Minimize()
	}

	// 5. Canonical relabeling erases the original state labels; byte
	//    equality of the encodings is language equality
	return a.ToCanonicForm().Encode() == b.ToCanonicForm().Encode(), nil
}
