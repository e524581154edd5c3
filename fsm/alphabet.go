package fsm

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Alphabet is an ordered set of input symbols. The order is fixed at
// construction (first occurrence wins) and is the stable iteration order used
// by every algorithm in this package; canonical relabeling depends on it.
//
// The zero value is an empty alphabet. Alphabet values are immutable: no
// method mutates the receiver, and Symbols returns a fresh slice.
type Alphabet struct {
	symbols []Symbol
	index   map[Symbol]struct{}
}

// NewAlphabet builds an alphabet from symbols, preserving first-occurrence
// order and discarding duplicates.
func NewAlphabet(symbols ...Symbol) Alphabet {
	a := Alphabet{
		symbols: make([]Symbol, 0, len(symbols)),
		index:   make(map[Symbol]struct{}, len(symbols)),
	}
	for _, sym := range symbols {
		if _, ok := a.index[sym]; ok {
			continue
		}
		a.index[sym] = struct{}{}
		a.symbols = append(a.symbols, sym)
	}

	return a
}

// ParseAlphabet parses a whitespace-separated list of single-character
// symbols. The empty (or all-whitespace) input yields an empty alphabet; a
// token longer than one character fails with ErrMalformedAlphabet.
func ParseAlphabet(text string) (Alphabet, error) {
	fields := strings.Fields(text)
	symbols := make([]Symbol, 0, len(fields))

	for _, tok := range fields {
		if utf8.RuneCountInString(tok) != 1 {
			return Alphabet{}, fmt.Errorf("fsm: alphabet token %q: %w", tok, ErrMalformedAlphabet)
		}
		r, _ := utf8.DecodeRuneInString(tok)
		symbols = append(symbols, Symbol(r))
	}

	return NewAlphabet(symbols...), nil
}

// Contains reports whether sym is a member of the alphabet.
func (a Alphabet) Contains(sym Symbol) bool {
	_, ok := a.index[sym]

	return ok
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the alphabet's symbols in their stable order.
// The returned slice is a copy; mutating it does not affect the alphabet.
func (a Alphabet) Symbols() []Symbol {
	return slices.Clone(a.symbols)
}

// Equal reports whether both alphabets hold the same symbols in the same
// stable order.
func (a Alphabet) Equal(other Alphabet) bool {
	return slices.Equal(a.symbols, other.symbols)
}

// Encode renders the alphabet as its symbols joined by single spaces, in the
// stable order fixed at construction.
func (a Alphabet) Encode() string {
	var sb strings.Builder
	for i, sym := range a.symbols {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sym.Encode())
	}

	return sb.String()
}

// String renders the alphabet in set notation, e.g. "{a, b}".
func (a Alphabet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, sym := range a.symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sym.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
