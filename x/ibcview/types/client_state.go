package types

import (
	ics23 "github.com/cosmos/ics23/go"

	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"
)

// TendermintClientStateTypeURL is the Any type URL this chain recognizes
// for Tendermint light-client states.
const TendermintClientStateTypeURL = "/ibc.lightclients.tendermint.v1.ClientState"

// ClientState exposes exactly the accessors the read context and the
// self-client validator need. It stands in for the trait-object
// ClientState of the Rust source: instead of downcasting a `dyn
// ClientState`, decoding dispatches on an Any type URL to produce one of
// a small, closed set of concrete implementations (today: Tendermint).
type ClientState interface {
	ChainID() string
	LatestHeight() Height
	IsFrozen() bool
	ProofSpecs() []*ics23.ProofSpec
	TrustLevel() ibctm.Fraction
}

// tendermintClientState is the sole ClientState variant this chain
// supports.
type tendermintClientState struct {
	inner *ibctm.ClientState
}

// NewTendermintClientState wraps a decoded Tendermint client state.
func NewTendermintClientState(cs *ibctm.ClientState) ClientState {
	return tendermintClientState{inner: cs}
}

func (cs tendermintClientState) ChainID() string { return cs.inner.ChainId }

func (cs tendermintClientState) LatestHeight() Height { return cs.inner.LatestHeight }

func (cs tendermintClientState) IsFrozen() bool { return !cs.inner.FrozenHeight.IsZero() }

func (cs tendermintClientState) ProofSpecs() []*ics23.ProofSpec { return cs.inner.ProofSpecs }

func (cs tendermintClientState) TrustLevel() ibctm.Fraction { return cs.inner.TrustLevel }
