package types

import (
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
)

// Height re-exports ibc-go's height type: (revision_number, revision_height),
// totally ordered lexicographically. This chain fixes revision_number to 0.
type Height = clienttypes.Height

// HostRevision is this chain's fixed consensus-height revision number.
const HostRevision uint64 = 0

// NewHostHeight builds a Height for the given block height, pinning the
// revision number to HostRevision.
func NewHostHeight(blockHeight int64) Height {
	return clienttypes.NewHeight(HostRevision, uint64(blockHeight))
}

// NewHeightFrom builds a Height from an explicit revision/height pair,
// used when recovering a Height parsed out of a storage key.
func NewHeightFrom(revisionNumber, revisionHeight uint64) Height {
	return clienttypes.NewHeight(revisionNumber, revisionHeight)
}
