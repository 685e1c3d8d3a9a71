package types

import (
	"fmt"
	"strconv"
	"strings"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// StoreKeyPrefix is prepended to every ICS-24 path before it reaches the
// storage adapter.
const StoreKeyPrefix = "ibc/"

// IbcKey turns an ICS-24 path into this chain's storage key.
func IbcKey(path string) string {
	return StoreKeyPrefix + path
}

// Counter keys.
const (
	ClientCounterKey     = StoreKeyPrefix + "clientCounter"
	ConnectionCounterKey = StoreKeyPrefix + "connectionCounter"
	ChannelCounterKey    = StoreKeyPrefix + "channelCounter"
)

// MaxExpectedTimePerBlockKey is the chain parameter key for the duration
// used by IBC's delay-period checks.
const MaxExpectedTimePerBlockKey = "parameters/max_expected_time_per_block"

// ClientUpdateTimestampKey returns the storage key holding the latest
// update time recorded for a client.
func ClientUpdateTimestampKey(clientID ClientID) string {
	return IbcKey(fmt.Sprintf("clients/%s/update_time", clientID))
}

// ClientUpdateHeightKey returns the storage key holding the latest update
// height recorded for a client.
func ClientUpdateHeightKey(clientID ClientID) string {
	return IbcKey(fmt.Sprintf("clients/%s/update_height", clientID))
}

// ClientStateKey returns the storage key for a client's own state.
func ClientStateKey(clientID ClientID) string {
	return IbcKey(host.FullClientStatePath(clientID))
}

// ConsensusStateKey returns the storage key for one client's consensus
// state at a specific height.
func ConsensusStateKey(clientID ClientID, height Height) string {
	return IbcKey(host.FullConsensusStatePath(clientID, height))
}

// ConsensusStatePrefix returns the storage prefix under which every
// consensus state for clientID is stored, across all heights. Iteration
// over this prefix underlies next_consensus_state/prev_consensus_state.
func ConsensusStatePrefix(clientID ClientID) string {
	return IbcKey(fmt.Sprintf("clients/%s/consensusStates/", clientID))
}

// ParseConsensusHeight recovers the Height suffix from a consensus-state
// key produced by ConsensusStateKey. A failure here means the index is
// corrupted — the caller treats it as a programmer-error abort, per
// key-parse failures are programmer errors and abort: they indicate a
// corrupted index, not a recoverable condition.
func ParseConsensusHeight(key string) (Height, error) {
	idx := strings.LastIndex(key, "/")
	if idx < 0 || idx == len(key)-1 {
		return Height{}, fmt.Errorf("malformed consensus state key: %s", key)
	}
	// the final path segment is "<revision_number>-<revision_height>"
	segment := key[idx+1:]
	dashIdx := strings.Index(segment, "-")
	if dashIdx < 0 {
		return Height{}, fmt.Errorf("malformed consensus state key: %s", key)
	}
	revisionNumber, err := strconv.ParseUint(segment[:dashIdx], 10, 64)
	if err != nil {
		return Height{}, fmt.Errorf("malformed consensus state key %s: %w", key, err)
	}
	revisionHeight, err := strconv.ParseUint(segment[dashIdx+1:], 10, 64)
	if err != nil {
		return Height{}, fmt.Errorf("malformed consensus state key %s: %w", key, err)
	}
	return NewHeightFrom(revisionNumber, revisionHeight), nil
}

// HeaderKey returns the storage key holding the host header recorded at
// a given block height. Headers are written once per block by the host
// chain itself (outside this module); host_consensus_state and
// host_timestamp read arbitrary past heights from this space, not just
// the current block.
func HeaderKey(height int64) string {
	return IbcKey(fmt.Sprintf("headers/%d", height))
}

// ConnectionKey returns the storage key for a connection end.
func ConnectionKey(connectionID ConnectionID) string {
	return IbcKey(host.ConnectionPath(connectionID))
}

// ChannelKey returns the storage key for a channel end.
func ChannelKey(portID PortID, channelID ChannelID) string {
	return IbcKey(host.ChannelPath(portID, channelID))
}

// NextSequenceSendKey, NextSequenceRecvKey and NextSequenceAckKey return
// the storage keys for the three ICS-04 sequence counters.
func NextSequenceSendKey(portID PortID, channelID ChannelID) string {
	return IbcKey(host.NextSequenceSendPath(portID, channelID))
}

func NextSequenceRecvKey(portID PortID, channelID ChannelID) string {
	return IbcKey(host.NextSequenceRecvPath(portID, channelID))
}

func NextSequenceAckKey(portID PortID, channelID ChannelID) string {
	return IbcKey(host.NextSequenceAckPath(portID, channelID))
}

// PacketCommitmentKey, PacketReceiptKey and PacketAcknowledgementKey
// return the storage keys for packet state, and ParseSequenceFromKey
// recovers the sequence number from any of them.
func PacketCommitmentKey(portID PortID, channelID ChannelID, seq Sequence) string {
	return IbcKey(host.PacketCommitmentPath(portID, channelID, seq))
}

func PacketReceiptKey(portID PortID, channelID ChannelID, seq Sequence) string {
	return IbcKey(host.PacketReceiptPath(portID, channelID, seq))
}

func PacketAcknowledgementKey(portID PortID, channelID ChannelID, seq Sequence) string {
	return IbcKey(host.PacketAcknowledgementPath(portID, channelID, seq))
}

// ParseSequenceFromKey recovers the trailing sequence number from any of
// the packet-state keys above.
func ParseSequenceFromKey(key string) (Sequence, error) {
	idx := strings.LastIndex(key, "/")
	if idx < 0 {
		return 0, fmt.Errorf("malformed packet state key: %s", key)
	}
	seq, err := strconv.ParseUint(key[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed packet state key %s: %w", key, err)
	}
	return seq, nil
}
