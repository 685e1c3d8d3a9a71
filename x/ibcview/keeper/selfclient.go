package keeper

import (
	"context"
	"reflect"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"

	"github.com/tokenize-x/ibc-ledger-core/x/ibcview/types"
)

// ValidateSelfClientAny is Component D: the seven-point checklist a
// counterparty-supplied Any-encoded client state purporting to describe
// this chain must pass before a connection handshake may proceed.
// Decoding itself enforces point 1 (must be the Tendermint variant);
// every failure below surfaces as a Client Other error, and callers
// performing a connection handshake are expected to wrap the cause
// again at the connection layer.
func (k Keeper) ValidateSelfClientAny(ctx context.Context, bz []byte) error {
	clientState, err := decodeClientState(bz)
	if err != nil {
		return err
	}
	return k.ValidateSelfClient(ctx, clientState)
}

// ValidateSelfClient runs checklist points 2-7 against an already
// decoded client state.
func (k Keeper) ValidateSelfClient(ctx context.Context, clientState types.ClientState) error {
	if clientState.IsFrozen() {
		return types.ErrClientOther.Wrap("client is frozen")
	}

	hostChainID := k.ChainID()
	if clientState.ChainID() != hostChainID {
		return types.ErrClientOther.Wrapf("chain id mismatch: expected %s, got %s", hostChainID, clientState.ChainID())
	}

	if clienttypes.ParseChainID(clientState.ChainID()) != 0 {
		return types.ErrClientOther.Wrapf("chain id %s must have revision number 0", clientState.ChainID())
	}

	currentHeight := k.HostHeight(ctx)
	if !(clientState.LatestHeight().RevisionHeight < currentHeight.RevisionHeight) {
		return types.ErrClientOther.Wrapf(
			"client state latest height %d must be strictly less than the current block height %d",
			clientState.LatestHeight().RevisionHeight, currentHeight.RevisionHeight,
		)
	}

	if !reflect.DeepEqual(clientState.ProofSpecs(), k.ProofSpecs()) {
		return types.ErrClientOther.Wrap("proof specs do not match this chain's proof specs")
	}

	if !TrustThresholdOK(clientState.TrustLevel()) {
		return types.ErrClientOther.Wrapf("trust level %d/%d is below the minimum threshold",
			clientState.TrustLevel().Numerator, clientState.TrustLevel().Denominator)
	}

	return nil
}

// TrustThresholdOK implements the observed source behavior: integer
// division of the fraction's components, compared against floor(1/3) =
// 0. Any non-zero numerator/denominator pair therefore passes, because
// floor(n/d) is 0 for every n < d and 1/3 also floors to 0. This is
// preserved deliberately rather than silently replaced with the
// stricter rational comparison;
// see StrictTrustThresholdOK for the corrected check.
func TrustThresholdOK(level ibctm.Fraction) bool {
	if level.Denominator == 0 {
		return false
	}
	return level.Numerator/level.Denominator >= uint64(1)/uint64(3)
}

// StrictTrustThresholdOK is the corrected rational comparison
// (numerator/denominator >= 1/3, evaluated as 3*numerator >=
// denominator, avoiding the integer-division truncation
// TrustThresholdOK exhibits). The self-client validator does not call
// this by default.
func StrictTrustThresholdOK(level ibctm.Fraction) bool {
	if level.Denominator == 0 {
		return false
	}
	return 3*level.Numerator >= level.Denominator
}
