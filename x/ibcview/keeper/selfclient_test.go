package keeper_test

import (
	"testing"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-ledger-core/x/ibcview/keeper"
	"github.com/tokenize-x/ibc-ledger-core/x/ibcview/types"
)

func validSelfClient() *ibctm.ClientState {
	return &ibctm.ClientState{
		ChainId:      "testchain",
		TrustLevel:   ibctm.Fraction{Numerator: 1, Denominator: 3},
		LatestHeight: clienttypes.NewHeight(0, 50),
	}
}

func TestValidateSelfClientFrozen(t *testing.T) {
	k := keeper.NewKeeper(fakeStoreService{store: newMemKVStore()}, "testchain", nil)
	ctx := testContext(100, cmtproto.Header{})

	cs := validSelfClient()
	cs.FrozenHeight = clienttypes.NewHeight(0, 1)

	err := k.ValidateSelfClient(ctx, types.NewTendermintClientState(cs))
	require.ErrorContains(t, err, "frozen")
}

func TestValidateSelfClientChainIDMismatch(t *testing.T) {
	k := keeper.NewKeeper(fakeStoreService{store: newMemKVStore()}, "testchain", nil)
	ctx := testContext(100, cmtproto.Header{})

	cs := validSelfClient()
	cs.ChainId = "other-chain"

	err := k.ValidateSelfClient(ctx, types.NewTendermintClientState(cs))
	require.ErrorContains(t, err, "chain id mismatch")
}

func TestValidateSelfClientHeightTooHigh(t *testing.T) {
	k := keeper.NewKeeper(fakeStoreService{store: newMemKVStore()}, "testchain", nil)
	ctx := testContext(100, cmtproto.Header{})

	cs := validSelfClient()
	cs.LatestHeight = clienttypes.NewHeight(0, 100)

	err := k.ValidateSelfClient(ctx, types.NewTendermintClientState(cs))
	require.ErrorContains(t, err, "strictly less than")
}

func TestValidateSelfClientOK(t *testing.T) {
	k := keeper.NewKeeper(fakeStoreService{store: newMemKVStore()}, "testchain", nil)
	ctx := testContext(100, cmtproto.Header{})

	cs := validSelfClient()
	err := k.ValidateSelfClient(ctx, types.NewTendermintClientState(cs))
	require.NoError(t, err)
}
