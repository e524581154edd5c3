package fsm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfsm/fsm"
)

// TestToCanonicForm_RelabelsSingleState: the sole state gets id 0 no matter
// what it was originally called.
func TestToCanonicForm_RelabelsSingleState(t *testing.T) {
	m, err := fsm.Parse("5/a b/5,b,5;5,a,5/5/")
	require.NoError(t, err)

	require.Equal(t, "0/a b/0,a,0;0,b,0/0/", m.ToCanonicForm().Encode())

	// The source machine is untouched.
	require.Equal(t, "5/a b/5,a,5;5,b,5/5/", m.Encode())
}

// TestToCanonicForm_IsomorphicMachinesAgree: two machines that differ only
// in state labeling canonicalize to the same encoding.
func TestToCanonicForm_IsomorphicMachinesAgree(t *testing.T) {
	a, err := fsm.Parse("0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1")
	require.NoError(t, err)
	b, err := fsm.Parse("1 5/a b/1,a,1;1,b,5;5,a,1;5,b,5/1/5")
	require.NoError(t, err)

	require.Equal(t, a.ToCanonicForm().Encode(), b.ToCanonicForm().Encode())
	require.Equal(t, "0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1", b.ToCanonicForm().Encode())
}

// TestToCanonicForm_Stable: canonicalizing twice changes nothing.
func TestToCanonicForm_Stable(t *testing.T) {
	m, err := fsm.Parse("3 7/a b/3,a,7;3,b,3;7,a,7;7,b,3/3/7")
	require.NoError(t, err)

	once := m.ToCanonicForm()
	require.Equal(t, once.Encode(), once.ToCanonicForm().Encode())
}

// TestToCanonicForm_DiscoveryOrder pins the id assignment: successors are
// discovered in alphabet order off a depth-first stack.
func TestToCanonicForm_DiscoveryOrder(t *testing.T) {
	// From 9: 'a' leads to 4 (discovered first, id 1), 'b' leads to 2
	// (id 2); both are sinks.
	m, err := fsm.Parse("2 4 9/a b/2,a,2;2,b,2;4,a,4;4,b,4;9,a,4;9,b,2/9/4")
	require.NoError(t, err)

	require.Equal(t, "0 1 2/a b/0,a,1;0,b,2;1,a,1;1,b,1;2,a,2;2,b,2/0/1", m.ToCanonicForm().Encode())
}

// TestToCanonicForm_DropsUnreachableAccepting: states the traversal never
// reaches do not appear in the canonical machine.
func TestToCanonicForm_DropsUnreachableAccepting(t *testing.T) {
	m, err := fsm.Parse("0 1 2/a/0,a,0;1,a,2;2,a,1/0/1")
	require.NoError(t, err)

	require.Equal(t, "0/a/0,a,0/0/", m.ToCanonicForm().Encode())
}

// TestToCanonicForm_PreservesLanguage: relabeling does not change acceptance.
func TestToCanonicForm_PreservesLanguage(t *testing.T) {
	m, err := fsm.Parse("3 7/a b/3,a,7;3,b,3;7,a,7;7,b,3/3/7")
	require.NoError(t, err)
	canonical := m.ToCanonicForm()

	for _, input := range allStrings("ab", 6) {
		want, err := m.Compute(input)
		require.NoError(t, err)
		got, err := canonical.Compute(input)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", input)
	}
}
