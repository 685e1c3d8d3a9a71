package types

import (
	commitmenttypes "github.com/cosmos/ibc-go/v10/modules/core/23-commitment/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"
)

// TendermintConsensusStateTypeURL is the Any type URL this chain
// recognizes for Tendermint light-client consensus states.
const TendermintConsensusStateTypeURL = "/ibc.lightclients.tendermint.v1.ConsensusState"

// ConsensusState exposes the accessors the read context needs: a
// commitment root, the time it was recorded, and the next validator set
// hash.
type ConsensusState interface {
	CommitmentRoot() []byte
	Timestamp() Timestamp
	NextValidatorsHash() []byte
}

// tendermintConsensusState is the sole ConsensusState variant this chain
// supports.
type tendermintConsensusState struct {
	inner *ibctm.ConsensusState
}

// NewTendermintConsensusState wraps a decoded Tendermint consensus state.
func NewTendermintConsensusState(cs *ibctm.ConsensusState) ConsensusState {
	return tendermintConsensusState{inner: cs}
}

func (cs tendermintConsensusState) CommitmentRoot() []byte { return cs.inner.Root.Hash }

func (cs tendermintConsensusState) Timestamp() Timestamp { return NewTimestamp(cs.inner.Timestamp) }

func (cs tendermintConsensusState) NextValidatorsHash() []byte {
	return cs.inner.NextValidatorsHash
}

// SynthesizeHostConsensusState builds the host's self-attested consensus
// state from a block header: commitment_root = header.AppHash.
func SynthesizeHostConsensusState(header *Header) ConsensusState {
	return NewTendermintConsensusState(&ibctm.ConsensusState{
		Timestamp:          header.Time,
		Root:               commitmenttypes.NewMerkleRoot(header.AppHash),
		NextValidatorsHash: header.NextValidatorsHash,
	})
}
