package types

import (
	"encoding/binary"

	bin "github.com/gagliardetto/binary"

	"github.com/tokenize-x/ibc-ledger-core/pkg/deterministicmap"
)

// Address identifies a validator, bech32-encoded.
type Address = string

// BlockHeight is the height at which a vote was cast.
type BlockHeight = int64

// Votes is a mapping Address -> BlockHeight with unique keys and
// insertion-order-irrelevant semantics: two Votes built from the same
// entries compare and encode identically regardless of the order they
// were inserted in. Backed by deterministicmap so Range (and therefore
// encoding) always walks keys in sorted order.
type Votes struct {
	m *deterministicmap.Map[Address, BlockHeight]
}

// NewVotes returns an empty Votes.
func NewVotes() Votes {
	return Votes{m: deterministicmap.New[Address, BlockHeight]()}
}

// VotesFromMap builds a Votes from a plain map, for callers (and tests)
// that already have one.
func VotesFromMap(entries map[Address]BlockHeight) Votes {
	v := NewVotes()
	for addr, height := range entries {
		v.Set(addr, height)
	}
	return v
}

func (v *Votes) ensure() {
	if v.m == nil {
		v.m = deterministicmap.New[Address, BlockHeight]()
	}
}

// Set records the height at which addr voted, overwriting any prior
// height for addr.
func (v *Votes) Set(addr Address, height BlockHeight) {
	v.ensure()
	v.m.Set(addr, height)
}

// Get returns the height addr voted at, if any.
func (v Votes) Get(addr Address) (BlockHeight, bool) {
	if v.m == nil {
		return 0, false
	}
	return v.m.Get(addr)
}

// Has reports whether addr has a recorded vote.
func (v Votes) Has(addr Address) bool {
	_, ok := v.Get(addr)
	return ok
}

// Len returns the number of distinct voters.
func (v Votes) Len() int {
	if v.m == nil {
		return 0
	}
	return v.m.Len()
}

// Range walks entries in deterministic, sorted-by-address order.
func (v Votes) Range(fn func(addr Address, height BlockHeight) bool) {
	if v.m == nil {
		return
	}
	v.m.Range(fn)
}

// Keys returns every voter address, sorted.
func (v Votes) Keys() []Address {
	keys := make([]Address, 0, v.Len())
	v.Range(func(addr Address, _ BlockHeight) bool {
		keys = append(keys, addr)
		return true
	})
	return keys
}

// KeySet returns the voter addresses as a set, for superset comparisons.
func (v Votes) KeySet() map[Address]struct{} {
	set := make(map[Address]struct{}, v.Len())
	v.Range(func(addr Address, _ BlockHeight) bool {
		set[addr] = struct{}{}
		return true
	})
	return set
}

// Clone returns a deep copy, so callers computing a "post" state from a
// "pre" state never mutate the predecessor in place.
func (v Votes) Clone() Votes {
	clone := NewVotes()
	v.Range(func(addr Address, height BlockHeight) bool {
		clone.Set(addr, height)
		return true
	})
	return clone
}

// MarshalWithEncoder Borsh-encodes Votes as a length-prefixed sequence
// of (address, height) pairs in Range order, which is always sorted —
// two Votes with the same contents always encode to the same bytes.
func (v Votes) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteUint32(uint32(v.Len()), binary.LittleEndian); err != nil {
		return err
	}
	var encErr error
	v.Range(func(addr Address, height BlockHeight) bool {
		if encErr = encoder.WriteString(addr); encErr != nil {
			return false
		}
		if encErr = encoder.WriteInt64(height, binary.LittleEndian); encErr != nil {
			return false
		}
		return true
	})
	return encErr
}

// UnmarshalWithDecoder is the counterpart decode hook.
func (v *Votes) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	count, err := decoder.ReadUint32(binary.LittleEndian)
	if err != nil {
		return err
	}
	*v = NewVotes()
	for i := uint32(0); i < count; i++ {
		addr, err := decoder.ReadString()
		if err != nil {
			return err
		}
		height, err := decoder.ReadInt64(binary.LittleEndian)
		if err != nil {
			return err
		}
		v.Set(addr, height)
	}
	return nil
}
