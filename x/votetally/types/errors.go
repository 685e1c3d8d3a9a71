package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// ModuleName defines the module name used for error registration and
// storage key prefixing.
const ModuleName = "votetally"

var (
	// ErrDuplicateVoter is raised by calculateUpdate when a voter in an
	// update batch already appears in the pre-update tally's SeenBy. The
	// caller assembling that batch violated its own contract, so this is
	// treated as a programmer error rather than a recoverable condition.
	ErrDuplicateVoter = sdkerrors.Register(ModuleName, 2, "duplicate voter in update batch")

	// ErrInvariantViolation marks a failure of validateUpdate's
	// monotonicity checks: seen latching false->true only, seen_by only
	// growing, voting_power only increasing.
	ErrInvariantViolation = sdkerrors.Register(ModuleName, 3, "tally invariant violated")

	// ErrDecode wraps any Borsh decode failure when reading persisted
	// tally state.
	ErrDecode = sdkerrors.Register(ModuleName, 4, "failed to decode vote tally state")

	// ErrMissingVotingPower is raised by CalculateNew when seen_by names
	// a validator with no matching entry in the supplied voting powers.
	ErrMissingVotingPower = sdkerrors.Register(ModuleName, 5, "missing voting power for a claimed vote")
)
