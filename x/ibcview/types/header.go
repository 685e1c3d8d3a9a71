package types

import (
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
)

// Header is the host chain's per-block attestation: wall time, app hash
// and the validator set hash for the following height. The chain already
// persists this exact message family per block, so the read context reuses
// it verbatim rather than inventing a parallel wire format.
type Header = cmtproto.Header
