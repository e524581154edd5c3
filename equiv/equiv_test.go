package equiv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfsm/equiv"
	"github.com/katalvlaran/dfsm/fsm"
)

func mustParse(t *testing.T, encoding string) *fsm.DFSM {
	t.Helper()
	m, err := fsm.Parse(encoding)
	require.NoError(t, err)

	return m
}

// TestEquivalent_RelabeledMachines: the same machine under different state
// labels is the same language.
func TestEquivalent_RelabeledMachines(t *testing.T) {
	a := mustParse(t, "0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1")
	b := mustParse(t, "1 5/a b/1,a,1;1,b,5;5,a,1;5,b,5/1/5")

	same, err := equiv.Equivalent(a, b)
	require.NoError(t, err)
	require.True(t, same)
}

// TestEquivalent_RedundantStates: a machine with mergeable and unreachable
// states is still equivalent to its minimal twin.
func TestEquivalent_RedundantStates(t *testing.T) {
	minimal := mustParse(t, "0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1")
	redundant := mustParse(t, "0 1 2/a b/0,a,0;0,b,1;1,a,0;1,b,2;2,a,0;2,b,2/0/1 2")

	same, err := equiv.Equivalent(minimal, redundant)
	require.NoError(t, err)
	require.True(t, same)
}

// TestEquivalent_DifferentLanguages: "ends with b" is not "everything".
func TestEquivalent_DifferentLanguages(t *testing.T) {
	endsWithB := mustParse(t, "0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1")
	everything := mustParse(t, "0/a b/0,a,0;0,b,0/0/0")

	same, err := equiv.Equivalent(endsWithB, everything)
	require.NoError(t, err)
	require.False(t, same)
}

// TestEquivalent_EmptyLanguages: two machines that accept nothing agree even
// when their graphs look nothing alike.
func TestEquivalent_EmptyLanguages(t *testing.T) {
	a := mustParse(t, "0/a/0,a,0/0/")
	b := mustParse(t, "0 1 2/a/0,a,1;1,a,2;2,a,0/0/")

	same, err := equiv.Equivalent(a, b)
	require.NoError(t, err)
	require.True(t, same)
}

// TestEquivalent_AssumeMinimal skips minimization for machines already
// minimal and reachable.
func TestEquivalent_AssumeMinimal(t *testing.T) {
	a := mustParse(t, "0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1").Minimize()
	b := mustParse(t, "1 5/a b/1,a,1;1,b,5;5,a,1;5,b,5/1/5").Minimize()

	same, err := equiv.Equivalent(a, b, equiv.WithAssumeMinimal())
	require.NoError(t, err)
	require.True(t, same)
}

// TestEquivalent_AlphabetMismatch: languages over different alphabets are
// never compared.
func TestEquivalent_AlphabetMismatch(t *testing.T) {
	a := mustParse(t, "0/a/0,a,0/0/")
	b := mustParse(t, "0/b/0,b,0/0/")

	_, err := equiv.Equivalent(a, b)
	require.ErrorIs(t, err, equiv.ErrAlphabetMismatch)
}

// TestEquivalent_NilMachine rejects nil inputs.
func TestEquivalent_NilMachine(t *testing.T) {
	m := mustParse(t, "0/a/0,a,0/0/")

	_, err := equiv.Equivalent(nil, m)
	require.ErrorIs(t, err, equiv.ErrNilMachine)
	_, err = equiv.Equivalent(m, nil)
	require.ErrorIs(t, err, equiv.ErrNilMachine)
}
