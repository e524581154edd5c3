package fsm

// Symbol is a single input character drawn from a machine's alphabet.
type Symbol rune

// Epsilon is the distinguished non-symbol marking a transition that fires on
// no input. It is never a member of any alphabet, and a valid DFSM carries no
// transition keyed on it. Epsilon sorts before every real symbol in the
// transition triple order.
const Epsilon Symbol = 0

// Encode renders the symbol for the machine encoding grammar:
// the character itself, or the empty string for Epsilon.
func (s Symbol) Encode() string {
	if s == Epsilon {
		return ""
	}

	return string(rune(s))
}

// String renders the symbol for human-readable output, using "ε" for Epsilon.
func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}

	return string(rune(s))
}
