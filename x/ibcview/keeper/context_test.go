package keeper_test

import (
	"testing"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-ledger-core/x/ibcview/keeper"
	"github.com/tokenize-x/ibc-ledger-core/x/ibcview/types"
)

// TestNextPrevConsensusState mirrors the literal scenario: heights
// {5, 9, 14, 20} recorded for a client; next(10) finds 14, prev(10)
// finds 9, next(20) finds nothing (20 is the maximum recorded height).
func TestNextPrevConsensusState(t *testing.T) {
	requireT := require.New(t)

	store := newMemKVStore()
	clientID := types.ClientID("07-tendermint-0")
	for _, h := range []int64{5, 9, 14, 20} {
		key := types.ConsensusStateKey(clientID, types.NewHeightFrom(0, uint64(h)))
		store.Set([]byte(key), consensusStateAt(t, h))
	}

	k := keeper.NewKeeper(fakeStoreService{store: store}, "test-chain-1", nil)
	ctx := testContext(100, cmtproto.Header{})

	next, ok, err := k.NextConsensusState(ctx, clientID, types.NewHeightFrom(0, 10))
	requireT.NoError(err)
	requireT.True(ok)
	requireT.Equal(int64(14), next.Timestamp().Time().Unix()-1_700_000_000)

	prev, ok, err := k.PrevConsensusState(ctx, clientID, types.NewHeightFrom(0, 10))
	requireT.NoError(err)
	requireT.True(ok)
	requireT.Equal(int64(9), prev.Timestamp().Time().Unix()-1_700_000_000)

	_, ok, err = k.NextConsensusState(ctx, clientID, types.NewHeightFrom(0, 20))
	requireT.NoError(err)
	requireT.False(ok)
}

// TestHostConsensusStatePastHeight covers a counterparty verifying the
// host's consensus state at a height well behind the current block: the
// header must come from the per-height store, not just the live context.
func TestHostConsensusStatePastHeight(t *testing.T) {
	requireT := require.New(t)

	store := newMemKVStore()
	pastHeight := int64(42)
	header := cmtproto.Header{
		Height:             pastHeight,
		Time:               timeAt(pastHeight),
		AppHash:            testHash("app-hash-42"),
		NextValidatorsHash: testHash("valhash-42"),
	}
	bz, err := gogoproto.Marshal(&header)
	requireT.NoError(err)
	store.Set([]byte(types.HeaderKey(pastHeight)), bz)

	k := keeper.NewKeeper(fakeStoreService{store: store}, "testchain", nil)
	ctx := testContext(100, cmtproto.Header{})

	cs, err := k.HostConsensusState(ctx, types.NewHeightFrom(0, uint64(pastHeight)))
	requireT.NoError(err)
	requireT.Equal(header.Time.Unix(), cs.Timestamp().Time().Unix())

	_, err = k.HostConsensusState(ctx, types.NewHeightFrom(0, 999))
	requireT.ErrorIs(err, types.ErrNoHostHeader)
}
