package fsm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfsm/fsm"
)

func TestParseStateIDList(t *testing.T) {
	states, err := fsm.ParseStateIDList(" 2 0  17 -3 ")
	require.NoError(t, err)
	require.Equal(t, []fsm.State{2, 0, 17, -3}, states)
}

func TestParseStateIDList_Empty(t *testing.T) {
	states, err := fsm.ParseStateIDList("   ")
	require.NoError(t, err)
	require.Empty(t, states)
}

func TestParseStateIDList_BadInteger(t *testing.T) {
	_, err := fsm.ParseStateIDList("0 one 2")
	require.ErrorIs(t, err, fsm.ErrMalformedEncoding)
}

func TestEncodeStateSet_Sorted(t *testing.T) {
	set := map[fsm.State]struct{}{5: {}, 0: {}, 3: {}}
	require.Equal(t, "0 3 5", fsm.EncodeStateSet(set))
	require.Equal(t, "", fsm.EncodeStateSet(nil))
}

func TestState_Encode(t *testing.T) {
	require.Equal(t, "7", fsm.State(7).Encode())
	require.Equal(t, "-2", fsm.State(-2).Encode())
	require.Equal(t, 7, fsm.State(7).ID())
}
