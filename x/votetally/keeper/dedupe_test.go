package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-ledger-core/x/votetally/keeper"
	"github.com/tokenize-x/ibc-ledger-core/x/votetally/types"
)

func TestDedupeSingleVoter(t *testing.T) {
	votes := keeper.Dedupe([]keeper.Signer{
		{Address: "val-a", Height: 10},
	})
	require.Equal(t, 1, votes.Len())
	height, ok := votes.Get("val-a")
	require.True(t, ok)
	require.Equal(t, types.BlockHeight(10), height)
}

func TestDedupeKeepsEarliestHeightPerAddress(t *testing.T) {
	votes := keeper.Dedupe([]keeper.Signer{
		{Address: "val-a", Height: 10},
		{Address: "val-a", Height: 3},
		{Address: "val-a", Height: 7},
		{Address: "val-b", Height: 5},
	})

	require.Equal(t, 2, votes.Len())

	heightA, ok := votes.Get("val-a")
	require.True(t, ok)
	require.Equal(t, types.BlockHeight(3), heightA)

	heightB, ok := votes.Get("val-b")
	require.True(t, ok)
	require.Equal(t, types.BlockHeight(5), heightB)
}
