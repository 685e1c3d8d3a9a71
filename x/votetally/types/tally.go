package types

import (
	bin "github.com/gagliardetto/binary"
)

// Tally is the quorum-tracking record for a single externally observed
// event: how much bonded power has attested to it, which validators
// (and at which height) contributed that power, and whether quorum has
// latched.
//
// Invariants, enforced by the keeper layer that mutates a Tally rather
// than by this type itself:
//   - Seen only transitions false -> true, never the reverse.
//   - SeenBy of any successor is a strict superset of its predecessor's keys.
//   - VotingPower is strictly increasing across updates that add voters.
//   - Seen == true iff VotingPower > 2/3, established at creation and
//     preserved afterward regardless of further changes.
type Tally struct {
	VotingPower FractionalVotingPower
	SeenBy      Votes
	Seen        bool
}

// ZeroTally is the record for an event with no votes yet.
func ZeroTally() Tally {
	return Tally{
		VotingPower: ZeroVotingPower(),
		SeenBy:      NewVotes(),
		Seen:        false,
	}
}

// MarshalWithEncoder Borsh-encodes a Tally as its three fields in
// declared order.
func (t Tally) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := t.VotingPower.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	if err := t.SeenBy.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	return encoder.WriteBool(t.Seen)
}

// UnmarshalWithDecoder is the counterpart decode hook.
func (t *Tally) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	if err := t.VotingPower.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	if err := t.SeenBy.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	seen, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	t.Seen = seen
	return nil
}
