package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-ledger-core/x/votetally/types"
)

// voteInfo joins a Votes map with a per-voter power lookup for a single
// tally step — the auxiliary type the Rust source's calculate_update
// builds from seen_by and a voting-power table before folding new
// voters into a Tally.
type voteInfo struct {
	votes  types.Votes
	powers map[types.Address]types.FractionalVotingPower
}

// newVoteInfo joins votes with a power lookup.
func newVoteInfo(votes types.Votes, powers map[types.Address]types.FractionalVotingPower) voteInfo {
	return voteInfo{votes: votes, powers: powers}
}

// Voters returns every address in this step's Votes.
func (v voteInfo) Voters() []types.Address { return v.votes.Keys() }

// VoteHeight returns the height addr voted at in this step.
func (v voteInfo) VoteHeight(addr types.Address) (types.BlockHeight, bool) {
	return v.votes.Get(addr)
}

// VotePower returns the voting power addr contributes in this step.
func (v voteInfo) VotePower(addr types.Address) (types.FractionalVotingPower, bool) {
	power, ok := v.powers[addr]
	return power, ok
}

// CalculateNew builds a fresh Tally from a complete seen_by map and a
// voting-power lookup: every validator named in seenBy must have a
// matching entry in votingPowers, or this is a data-mismatch error.
func CalculateNew(seenBy types.Votes, votingPowers map[types.Address]types.FractionalVotingPower) (types.Tally, error) {
	sum := types.ZeroVotingPower()
	for _, addr := range seenBy.Keys() {
		power, ok := votingPowers[addr]
		if !ok {
			return types.Tally{}, errorsmod.Wrapf(types.ErrMissingVotingPower, "validator %s", addr)
		}
		sum = sum.Add(power)
	}
	return types.Tally{
		VotingPower: sum,
		SeenBy:      seenBy.Clone(),
		Seen:        sum.ExceedsQuorum(),
	}, nil
}

// calculateUpdate folds a single step's new voters into pre, producing
// the candidate post-tally. Voters already present in pre.SeenBy signal
// a bug in the caller assembling this step's batch, not a recoverable
// condition.
func calculateUpdate(pre types.Tally, info voteInfo) (types.Tally, error) {
	previous := pre.SeenBy.KeySet()
	for _, addr := range info.Voters() {
		if _, exists := previous[addr]; exists {
			return types.Tally{}, errorsmod.Wrapf(types.ErrDuplicateVoter, "validator %s", addr)
		}
	}

	seenByPost := pre.SeenBy.Clone()
	votingPowerPost := pre.VotingPower
	for _, addr := range info.Voters() {
		height, _ := info.VoteHeight(addr)
		power, _ := info.VotePower(addr)
		seenByPost.Set(addr, height)
		votingPowerPost = votingPowerPost.Add(power)
	}

	return types.Tally{
		VotingPower: votingPowerPost,
		SeenBy:      seenByPost,
		Seen:        votingPowerPost.ExceedsQuorum(),
	}, nil
}

// validateUpdate checks the monotonicity invariants between pre and
// post, returning the set of storage sub-keys that actually changed so
// the caller persists only what moved.
func validateUpdate(keys types.Keys, pre, post types.Tally) (types.ChangedKeys, error) {
	changed := types.NewChangedKeys()
	seenChangeRecorded := false

	if pre.Seen != post.Seen {
		if pre.Seen || !post.Seen {
			return nil, errorsmod.Wrap(types.ErrInvariantViolation, "seen must latch false to true only")
		}
		changed.Add(keys.Seen())
		seenChangeRecorded = true
	}

	preSet, postSet := pre.SeenBy.KeySet(), post.SeenBy.KeySet()
	if !sameKeySet(preSet, postSet) {
		if !isSuperset(postSet, preSet) {
			return nil, errorsmod.Wrap(types.ErrInvariantViolation, "seen_by must only grow")
		}
		changed.Add(keys.SeenBy())
	}

	if !pre.VotingPower.Equal(post.VotingPower) {
		if !post.VotingPower.GT(pre.VotingPower) {
			return nil, errorsmod.Wrap(types.ErrInvariantViolation, "voting_power must strictly increase when it changes")
		}
		changed.Add(keys.VotingPower())
	}

	// Defense in depth: the strict-increase check above already makes
	// this unreachable, but it documents the quorum invariant directly.
	if post.VotingPower.ExceedsQuorum() && !seenChangeRecorded && pre.VotingPower.GTE(post.VotingPower) {
		return nil, errorsmod.Wrap(types.ErrInvariantViolation, "quorum reached but seen did not flip")
	}

	return changed, nil
}

func sameKeySet(a, b map[types.Address]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func isSuperset(super, sub map[types.Address]struct{}) bool {
	for k := range sub {
		if _, ok := super[k]; !ok {
			return false
		}
	}
	return true
}

// CalculateUpdated loads the current tally for (eventKind, eventID),
// folds in this step's votes, validates the transition, persists the
// result, and logs the quorum-achieved transition at info level (debug
// otherwise).
func (k Keeper) CalculateUpdated(
	ctx context.Context,
	eventKind, eventID string,
	votes types.Votes,
	votingPowers map[types.Address]types.FractionalVotingPower,
) (types.Tally, types.ChangedKeys, error) {
	keys := types.NewKeys(eventKind, eventID)

	pre, err := k.LoadTally(ctx, eventKind, eventID)
	if err != nil {
		return types.Tally{}, nil, err
	}

	post, err := calculateUpdate(pre, newVoteInfo(votes, votingPowers))
	if err != nil {
		return types.Tally{}, nil, err
	}

	changed, err := validateUpdate(keys, pre, post)
	if err != nil {
		return types.Tally{}, nil, err
	}

	logger := sdk.UnwrapSDKContext(ctx).Logger()
	if post.Seen && !pre.Seen {
		logger.Info("quorum achieved", "event_kind", eventKind, "event_id", eventID, "voting_power", post.VotingPower.String())
	} else {
		logger.Debug("tally updated", "event_kind", eventKind, "event_id", eventID, "voting_power", post.VotingPower.String())
	}

	if err := k.SaveTally(ctx, eventKind, eventID, post); err != nil {
		return types.Tally{}, nil, err
	}

	return post, changed, nil
}
