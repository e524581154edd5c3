// Package equiv defines the options and sentinel errors for language
// equivalence checking.
package equiv

import "errors"

var (
	// ErrNilMachine is returned when a nil *fsm.DFSM is passed to Equivalent.
	ErrNilMachine = errors.New("equiv: machine is nil")

	// ErrAlphabetMismatch indicates the two machines' alphabets are not
	// identical (same symbols in the same stable order), so their languages
	// are not comparable.
	ErrAlphabetMismatch = errors.New("equiv: alphabets differ")
)

// Option configures optional behavior of Equivalent.
// Use with Equivalent(a, b, opts...).
type Option func(*Options)

// Options holds configurable parameters for equivalence checking.
type Options struct {
	// AssumeMinimal, if true, skips the minimization step. Both machines
	// must already be minimal and free of unreachable states; otherwise the
	// comparison can report false negatives. Default is false.
	AssumeMinimal bool
}

// DefaultOptions returns an Options struct with minimization enabled.
func DefaultOptions() Options {
	return Options{AssumeMinimal: false}
}

// WithAssumeMinimal returns an Option that skips minimization. Use it only
// when both machines are known to be minimal and reachable (for example,
// outputs of fsm.DFSM.Minimize).
func WithAssumeMinimal() Option {
	return func(o *Options) {
		o.AssumeMinimal = true
	}
}
