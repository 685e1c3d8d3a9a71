package types

import (
	"encoding/binary"
	"fmt"
	"math/big"

	bin "github.com/gagliardetto/binary"
)

// FractionalVotingPower is an exact rational in [0,1]: a validator's
// share of total bonded power, or a running sum of such shares. The
// quorum check (> 2/3) sits on an exact boundary, so this wraps
// stdlib math/big.Rat rather than cosmossdk.io/math.LegacyDec — LegacyDec
// is a fixed-precision decimal and can misjudge a value that lands
// exactly (or near-exactly, after rounding) on 2/3.
type FractionalVotingPower struct {
	r *big.Rat
}

var twoThirds = big.NewRat(2, 3)

// ZeroVotingPower is the additive identity.
func ZeroVotingPower() FractionalVotingPower {
	return FractionalVotingPower{r: big.NewRat(0, 1)}
}

// NewFractionalVotingPower builds a power from a numerator/denominator
// pair, rejecting anything outside [0,1] or with a zero denominator.
func NewFractionalVotingPower(numerator, denominator uint64) (FractionalVotingPower, error) {
	if denominator == 0 {
		return FractionalVotingPower{}, fmt.Errorf("voting power denominator must be non-zero")
	}
	r := new(big.Rat).SetFrac(new(big.Int).SetUint64(numerator), new(big.Int).SetUint64(denominator))
	if r.Sign() < 0 || r.Cmp(big.NewRat(1, 1)) > 0 {
		return FractionalVotingPower{}, fmt.Errorf("voting power %s is outside [0,1]", r.String())
	}
	return FractionalVotingPower{r: r}, nil
}

// Add returns p + other.
func (p FractionalVotingPower) Add(other FractionalVotingPower) FractionalVotingPower {
	return FractionalVotingPower{r: new(big.Rat).Add(p.r, other.r)}
}

// GT reports whether p is strictly greater than other.
func (p FractionalVotingPower) GT(other FractionalVotingPower) bool {
	return p.r.Cmp(other.r) > 0
}

// GTE reports whether p is greater than or equal to other.
func (p FractionalVotingPower) GTE(other FractionalVotingPower) bool {
	return p.r.Cmp(other.r) >= 0
}

// Equal reports whether p and other represent the same rational value.
func (p FractionalVotingPower) Equal(other FractionalVotingPower) bool {
	return p.r.Cmp(other.r) == 0
}

// ExceedsQuorum reports the tally's seen condition: strictly greater
// than 2/3, not greater-or-equal.
func (p FractionalVotingPower) ExceedsQuorum() bool {
	return p.r.Cmp(twoThirds) > 0
}

func (p FractionalVotingPower) String() string {
	if p.r == nil {
		return "0/1"
	}
	return p.r.RatString()
}

// MarshalWithEncoder implements the gagliardetto/binary custom-encode
// hook: a rational is encoded as its reduced numerator/denominator pair,
// little-endian uint64 each, as Borsh encodes integers.
func (p FractionalVotingPower) MarshalWithEncoder(encoder *bin.Encoder) error {
	r := p.r
	if r == nil {
		r = big.NewRat(0, 1)
	}
	if err := encoder.WriteUint64(r.Num().Uint64(), binary.LittleEndian); err != nil {
		return err
	}
	return encoder.WriteUint64(r.Denom().Uint64(), binary.LittleEndian)
}

// UnmarshalWithDecoder is the counterpart decode hook.
func (p *FractionalVotingPower) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	num, err := decoder.ReadUint64(binary.LittleEndian)
	if err != nil {
		return err
	}
	denom, err := decoder.ReadUint64(binary.LittleEndian)
	if err != nil {
		return err
	}
	if denom == 0 {
		denom = 1
	}
	p.r = new(big.Rat).SetFrac(new(big.Int).SetUint64(num), new(big.Int).SetUint64(denom))
	return nil
}
