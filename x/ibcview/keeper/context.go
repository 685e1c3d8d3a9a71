package keeper

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	connectiontypes "github.com/cosmos/ibc-go/v10/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	commitmenttypes "github.com/cosmos/ibc-go/v10/modules/core/23-commitment/types"
	gogoproto "github.com/cosmos/gogoproto/proto"

	"github.com/tokenize-x/ibc-ledger-core/x/ibcview/types"
)

// ClientState is the delegated point read named client_state.
func (k Keeper) ClientState(ctx context.Context, clientID types.ClientID) (types.ClientState, error) {
	bz, ok, err := k.read(ctx, types.ClientStateKey(clientID))
	if err != nil {
		return nil, errorsmod.Wrap(err, "read client state")
	}
	if !ok {
		return nil, types.ErrClientSpecific.Wrapf("client state not found for %s", clientID)
	}
	return decodeClientState(bz)
}

// DecodeClientState is the delegated-to-4.B operation of the same name.
func (k Keeper) DecodeClientState(bz []byte) (types.ClientState, error) {
	return decodeClientState(bz)
}

// ConsensusState is the delegated point read named consensus_state.
func (k Keeper) ConsensusState(ctx context.Context, clientID types.ClientID, height types.Height) (types.ConsensusState, error) {
	bz, ok, err := k.read(ctx, types.ConsensusStateKey(clientID, height))
	if err != nil {
		return nil, errorsmod.Wrap(err, "read consensus state")
	}
	if !ok {
		return nil, types.ErrClientSpecific.Wrapf("consensus state not found for %s at %s", clientID, height)
	}
	return decodeConsensusState(bz)
}

// consensusHeightEntry pairs a decoded neighbor height with its raw stored value,
// used internally by NextConsensusState/PrevConsensusState.
type consensusHeightEntry struct {
	height types.Height
	value  []byte
}

// collectConsensusHeights scans every consensus-state entry recorded for
// clientID. Iteration order is never assumed sorted — both
// NextConsensusState and PrevConsensusState evaluate every candidate
// themselves.
func (k Keeper) collectConsensusHeights(ctx context.Context, clientID types.ClientID) ([]consensusHeightEntry, error) {
	var entries []consensusHeightEntry
	prefix := types.ConsensusStatePrefix(clientID)
	err := k.iteratePrefix(ctx, prefix, func(key string, value []byte) (bool, error) {
		height, err := types.ParseConsensusHeight(key)
		if err != nil {
			// A corrupted index is a programmer error, not a recoverable
			// condition: the key was written by this same module.
			panic(err)
		}
		entries = append(entries, consensusHeightEntry{height: height, value: value})
		return true, nil
	})
	if err != nil {
		return nil, errorsmod.Wrap(err, "iterate consensus states")
	}
	return entries, nil
}

// NextConsensusState returns the consensus state at the least height
// strictly greater than targetHeight, or (nil, false) if none exists.
func (k Keeper) NextConsensusState(ctx context.Context, clientID types.ClientID, targetHeight types.Height) (types.ConsensusState, bool, error) {
	entries, err := k.collectConsensusHeights(ctx, clientID)
	if err != nil {
		return nil, false, err
	}

	var best *consensusHeightEntry
	for i := range entries {
		e := entries[i]
		if !e.height.GT(targetHeight) {
			continue
		}
		if best == nil || e.height.LT(best.height) {
			best = &e
		}
	}
	if best == nil {
		return nil, false, nil
	}
	cs, err := decodeConsensusState(best.value)
	if err != nil {
		return nil, false, err
	}
	return cs, true, nil
}

// PrevConsensusState returns the consensus state at the greatest height
// strictly less than targetHeight, or (nil, false) if none exists.
func (k Keeper) PrevConsensusState(ctx context.Context, clientID types.ClientID, targetHeight types.Height) (types.ConsensusState, bool, error) {
	entries, err := k.collectConsensusHeights(ctx, clientID)
	if err != nil {
		return nil, false, err
	}

	var best *consensusHeightEntry
	for i := range entries {
		e := entries[i]
		if !e.height.LT(targetHeight) {
			continue
		}
		if best == nil || e.height.GT(best.height) {
			best = &e
		}
	}
	if best == nil {
		return nil, false, nil
	}
	cs, err := decodeConsensusState(best.value)
	if err != nil {
		return nil, false, err
	}
	return cs, true, nil
}

// HostHeight is (revision=0, revision_height=current block height).
func (k Keeper) HostHeight(ctx context.Context) types.Height {
	return types.NewHostHeight(sdk.UnwrapSDKContext(ctx).BlockHeight())
}

// HostTimestamp reads the host header for HostHeight and converts its
// wall-clock time.
func (k Keeper) HostTimestamp(ctx context.Context) (types.Timestamp, error) {
	height := k.HostHeight(ctx)
	header, ok, err := k.getHeader(ctx, int64(height.RevisionHeight))
	if err != nil {
		return types.Timestamp{}, err
	}
	if !ok {
		return types.Timestamp{}, types.ErrNoHostHeader.Wrapf("no header at height %d", height.RevisionHeight)
	}
	return types.NewTimestamp(header.Time), nil
}

// HostConsensusState synthesizes the host's self-attested consensus
// state from the header recorded at height.
func (k Keeper) HostConsensusState(ctx context.Context, height types.Height) (types.ConsensusState, error) {
	header, ok, err := k.getHeader(ctx, int64(height.RevisionHeight))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.ErrNoHostHeader.Wrapf("no header at height %d", height.RevisionHeight)
	}
	return types.SynthesizeHostConsensusState(header), nil
}

// getHeader fetches the block header recorded for a given block height,
// past or present. Headers are written by the host chain itself per
// block (this module only observes them) under HeaderKey(height), so
// host_consensus_state/host_timestamp work for any height a counterparty
// has stored, not only the current one.
func (k Keeper) getHeader(ctx context.Context, blockHeight int64) (*types.Header, bool, error) {
	bz, ok, err := k.read(ctx, types.HeaderKey(blockHeight))
	if err != nil {
		return nil, false, errorsmod.Wrap(err, "read header")
	}
	if !ok {
		return nil, false, nil
	}
	var header types.Header
	if err := gogoproto.Unmarshal(bz, &header); err != nil {
		return nil, false, types.ErrDecode.Wrap(err.Error())
	}
	return &header, true, nil
}

// ClientCounter, ConnectionCounter and ChannelCounter each read a named
// counter key via the storage adapter.
func (k Keeper) ClientCounter(ctx context.Context) (uint64, error) {
	return k.readCounter(ctx, types.ClientCounterKey)
}

func (k Keeper) ConnectionCounter(ctx context.Context) (uint64, error) {
	return k.readCounter(ctx, types.ConnectionCounterKey)
}

func (k Keeper) ChannelCounter(ctx context.Context) (uint64, error) {
	return k.readCounter(ctx, types.ChannelCounterKey)
}

// ConnectionEnd is the delegated point read named connection_end.
func (k Keeper) ConnectionEnd(ctx context.Context, connectionID types.ConnectionID) (connectiontypes.ConnectionEnd, error) {
	var end connectiontypes.ConnectionEnd
	bz, ok, err := k.read(ctx, types.ConnectionKey(connectionID))
	if err != nil {
		return end, errorsmod.Wrap(err, "read connection end")
	}
	if !ok {
		return end, types.ErrClientSpecific.Wrapf("connection end not found for %s", connectionID)
	}
	if err := gogoproto.Unmarshal(bz, &end); err != nil {
		return end, types.ErrDecode.Wrap(err.Error())
	}
	return end, nil
}

// ChannelEnd is the delegated point read named channel_end.
func (k Keeper) ChannelEnd(ctx context.Context, portID types.PortID, channelID types.ChannelID) (channeltypes.Channel, error) {
	var end channeltypes.Channel
	bz, ok, err := k.read(ctx, types.ChannelKey(portID, channelID))
	if err != nil {
		return end, errorsmod.Wrap(err, "read channel end")
	}
	if !ok {
		return end, types.ErrChannelOther.Wrapf("channel end not found for %s/%s", portID, channelID)
	}
	if err := gogoproto.Unmarshal(bz, &end); err != nil {
		return end, types.ErrDecode.Wrap(err.Error())
	}
	return end, nil
}

// GetNextSequenceSend, GetNextSequenceRecv and GetNextSequenceAck derive
// their storage key from the canonical port/channel path and read a
// sequence number.
func (k Keeper) GetNextSequenceSend(ctx context.Context, portID types.PortID, channelID types.ChannelID) (types.Sequence, error) {
	return k.readSequence(ctx, types.NextSequenceSendKey(portID, channelID))
}

func (k Keeper) GetNextSequenceRecv(ctx context.Context, portID types.PortID, channelID types.ChannelID) (types.Sequence, error) {
	return k.readSequence(ctx, types.NextSequenceRecvKey(portID, channelID))
}

func (k Keeper) GetNextSequenceAck(ctx context.Context, portID types.PortID, channelID types.ChannelID) (types.Sequence, error) {
	return k.readSequence(ctx, types.NextSequenceAckKey(portID, channelID))
}

func (k Keeper) readSequence(ctx context.Context, key string) (types.Sequence, error) {
	value, ok, err := k.read(ctx, key)
	if err != nil {
		return 0, errorsmod.Wrap(err, "read sequence")
	}
	if !ok {
		return 0, nil
	}
	return decodeCounter(value), nil
}

// GetPacketCommitment returns the stored commitment, or a typed
// not-found error carrying the parsed sequence.
func (k Keeper) GetPacketCommitment(ctx context.Context, portID types.PortID, channelID types.ChannelID, seq types.Sequence) (types.PacketCommitment, error) {
	key := types.PacketCommitmentKey(portID, channelID, seq)
	value, ok, err := k.read(ctx, key)
	if err != nil {
		return nil, types.ErrChannelOther.Wrap(err.Error())
	}
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrPacketCommitmentNotFound, "sequence %d", seq)
	}
	return types.PacketCommitment(value), nil
}

// GetPacketReceipt returns Ok irrespective of the stored bytes, or a
// typed not-found error carrying the parsed sequence.
func (k Keeper) GetPacketReceipt(ctx context.Context, portID types.PortID, channelID types.ChannelID, seq types.Sequence) (types.Receipt, error) {
	key := types.PacketReceiptKey(portID, channelID, seq)
	_, ok, err := k.read(ctx, key)
	if err != nil {
		return types.Receipt{}, types.ErrChannelOther.Wrap(err.Error())
	}
	if !ok {
		return types.Receipt{}, errorsmod.Wrapf(types.ErrPacketReceiptNotFound, "sequence %d", seq)
	}
	return types.ReceiptOk(), nil
}

// GetPacketAcknowledgement returns the stored acknowledgement commitment,
// or a typed not-found error carrying the parsed sequence.
func (k Keeper) GetPacketAcknowledgement(ctx context.Context, portID types.PortID, channelID types.ChannelID, seq types.Sequence) (types.AcknowledgementCommitment, error) {
	key := types.PacketAcknowledgementKey(portID, channelID, seq)
	value, ok, err := k.read(ctx, key)
	if err != nil {
		return nil, types.ErrChannelOther.Wrap(err.Error())
	}
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrPacketAcknowledgementNotFound, "sequence %d", seq)
	}
	return types.AcknowledgementCommitment(value), nil
}

// CommitmentPrefix is the constant byte string "ibc".
func (k Keeper) CommitmentPrefix() commitmenttypes.MerklePrefix {
	return commitmenttypes.NewMerklePrefix([]byte("ibc"))
}

// ClientUpdateTime reads the single latest update timestamp recorded for
// clientID. The height parameter is accepted but ignored: only one
// latest value is stored per client, not a per-height history.
func (k Keeper) ClientUpdateTime(ctx context.Context, clientID types.ClientID, _ types.Height) (types.Timestamp, error) {
	value, ok, err := k.read(ctx, types.ClientUpdateTimestampKey(clientID))
	if err != nil {
		return types.Timestamp{}, errorsmod.Wrap(err, "read client update time")
	}
	if !ok {
		return types.Timestamp{}, types.ErrClientSpecific.Wrapf("no recorded update time for %s", clientID)
	}
	seconds := decodeCounter(value)
	return types.NewTimestamp(time.Unix(int64(seconds), 0).UTC()), nil
}

// ClientUpdateHeight is the height-typed analogue of ClientUpdateTime.
// The height parameter is likewise accepted and ignored.
func (k Keeper) ClientUpdateHeight(ctx context.Context, clientID types.ClientID, _ types.Height) (types.Height, error) {
	value, ok, err := k.read(ctx, types.ClientUpdateHeightKey(clientID))
	if err != nil {
		return types.Height{}, errorsmod.Wrap(err, "read client update height")
	}
	if !ok {
		return types.Height{}, types.ErrClientSpecific.Wrapf("no recorded update height for %s", clientID)
	}
	return types.NewHeightFrom(types.HostRevision, decodeCounter(value)), nil
}

// MaxExpectedTimePerBlock reads the chain's configured delay-period
// duration. Absence is a fatal invariant violation: the initializer
// (external to this module) must guarantee the parameter is set before
// any IBC verification runs.
func (k Keeper) MaxExpectedTimePerBlock(ctx context.Context) uint64 {
	value, ok, err := k.read(ctx, types.MaxExpectedTimePerBlockKey)
	if err != nil {
		panic(errorsmod.Wrap(err, "read max_expected_time_per_block"))
	}
	if !ok {
		panic("max_expected_time_per_block is unset")
	}
	seconds, err := decodeDurationSecs(value)
	if err != nil {
		panic(err)
	}
	return seconds
}
