package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec/types"
	gogoproto "github.com/cosmos/gogoproto/proto"

	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"

	ibcviewtypes "github.com/tokenize-x/ibc-ledger-core/x/ibcview/types"
)

// decodeClientState is Component B: the Any dispatch table that stands
// in for the Rust source's `decode_client_state`, which downcasts a
// `dyn ClientState` trait object. Stored client/consensus states are
// always Any-wrapped proto messages (the same encoding ibc-go's own
// keeper uses); this module recognizes exactly one concrete type,
// Tendermint, and returns ErrClientNotTm for anything else.
func decodeClientState(bz []byte) (ibcviewtypes.ClientState, error) {
	any := &types.Any{}
	if err := gogoproto.Unmarshal(bz, any); err != nil {
		return nil, ibcviewtypes.ErrDecode.Wrapf("unmarshal Any: %s", err)
	}

	switch any.TypeUrl {
	case ibcviewtypes.TendermintClientStateTypeURL:
		cs := &ibctm.ClientState{}
		if err := gogoproto.Unmarshal(any.Value, cs); err != nil {
			return nil, ibcviewtypes.ErrDecode.Wrapf("unmarshal tendermint client state: %s", err)
		}
		return ibcviewtypes.NewTendermintClientState(cs), nil
	default:
		return nil, ibcviewtypes.ErrClientNotTm.Wrapf("unrecognized client state type URL %q", any.TypeUrl)
	}
}

// decodeConsensusState mirrors decodeClientState for consensus states.
func decodeConsensusState(bz []byte) (ibcviewtypes.ConsensusState, error) {
	any := &types.Any{}
	if err := gogoproto.Unmarshal(bz, any); err != nil {
		return nil, ibcviewtypes.ErrDecode.Wrapf("unmarshal Any: %s", err)
	}

	switch any.TypeUrl {
	case ibcviewtypes.TendermintConsensusStateTypeURL:
		cs := &ibctm.ConsensusState{}
		if err := gogoproto.Unmarshal(any.Value, cs); err != nil {
			return nil, ibcviewtypes.ErrDecode.Wrapf("unmarshal tendermint consensus state: %s", err)
		}
		return ibcviewtypes.NewTendermintConsensusState(cs), nil
	default:
		return nil, ibcviewtypes.ErrClientNotTm.Wrapf("unrecognized consensus state type URL %q", any.TypeUrl)
	}
}

// decodeDurationSecs reads the 8-byte big-endian seconds count this
// module uses for DurationSecs parameters. A plain counter, not a
// message type, so stdlib encoding/binary is the right tool rather than
// a protobuf wrapper for a single uint64 (see design notes).
func decodeDurationSecs(bz []byte) (uint64, error) {
	if len(bz) != 8 {
		return 0, ibcviewtypes.ErrDecode.Wrapf("duration: expected 8 bytes, got %d", len(bz))
	}
	return decodeCounter(bz), nil
}
