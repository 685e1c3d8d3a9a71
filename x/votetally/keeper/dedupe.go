package keeper

import (
	"sort"

	"github.com/tokenize-x/ibc-ledger-core/x/votetally/types"
)

// Signer pairs a validator address with the height at which it signed,
// the raw shape multiple signatures on the same event arrive in before
// dedup.
type Signer struct {
	Address types.Address
	Height  types.BlockHeight
}

// Dedupe collapses a set of (address, height) signer pairs into Votes,
// keeping the earliest height per address. Matches the Rust source's
// approach of walking a sorted set in reverse so later iterations
// overwrite with smaller heights, rather than tracking a running minimum
// per address explicitly.
func Dedupe(signers []Signer) types.Votes {
	sorted := make([]Signer, len(signers))
	copy(sorted, signers)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Address != sorted[j].Address {
			return sorted[i].Address < sorted[j].Address
		}
		return sorted[i].Height < sorted[j].Height
	})

	votes := types.NewVotes()
	for i := len(sorted) - 1; i >= 0; i-- {
		votes.Set(sorted[i].Address, sorted[i].Height)
	}
	return votes
}
