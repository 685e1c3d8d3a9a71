package keeper

import (
	"context"
	"crypto/sha256"

	storetypes "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	prefixstore "cosmossdk.io/store/types"
	ics23 "github.com/cosmos/ics23/go"
)

// Keeper is the storage adapter: a pure read surface over the ICS-24
// key/value space. It never writes — packet, client and channel state
// are written by the (external) IBC message handlers this module does
// not implement.
type Keeper struct {
	storeService storetypes.KVStoreService

	chainID    string
	proofSpecs []*ics23.ProofSpec
}

// NewKeeper builds a Keeper. chainID and proofSpecs are fixed at
// construction: this module has no genesis/params wiring of its own.
func NewKeeper(
	storeService storetypes.KVStoreService,
	chainID string,
	proofSpecs []*ics23.ProofSpec,
) Keeper {
	return Keeper{
		storeService: storeService,
		chainID:      chainID,
		proofSpecs:   proofSpecs,
	}
}

// ChainID returns the host chain's own chain ID.
func (k Keeper) ChainID() string { return k.chainID }

// ProofSpecs returns the proof specs this host expects of clients that
// verify its state.
func (k Keeper) ProofSpecs() []*ics23.ProofSpec { return k.proofSpecs }

// Hash is the commitment hash function used throughout this module,
// matching the Rust source's sha256 usage for IBC commitments.
func (k Keeper) Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// read returns the raw bytes stored under key, or (nil, false) if the
// key is absent.
func (k Keeper) read(ctx context.Context, key string) ([]byte, bool, error) {
	store := k.storeService.OpenKVStore(ctx)
	value, err := store.Get([]byte(key))
	if err != nil {
		return nil, false, errorsmod.Wrap(err, "read key")
	}
	if value == nil {
		return nil, false, nil
	}
	return value, true, nil
}

// readCounter decodes an 8-byte big-endian counter, defaulting to zero
// when the key is absent.
func (k Keeper) readCounter(ctx context.Context, key string) (uint64, error) {
	value, ok, err := k.read(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return decodeCounter(value), nil
}

// iteratePrefix walks every key under prefix in ascending key order,
// invoking fn with the full key and its value. fn returning false stops
// iteration early. This underlies next_consensus_state/
// prev_consensus_state, which must scan every consensus state recorded
// for a client.
func (k Keeper) iteratePrefix(ctx context.Context, prefix string, fn func(key string, value []byte) (bool, error)) error {
	store := k.storeService.OpenKVStore(ctx)
	start := []byte(prefix)
	end := prefixstore.PrefixEndBytes(start)
	iter, err := store.Iterator(start, end)
	if err != nil {
		return errorsmod.Wrap(err, "open iterator")
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		cont, err := fn(string(iter.Key()), iter.Value())
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}
	return nil
}

func decodeCounter(value []byte) uint64 {
	var n uint64
	for _, b := range value {
		n = n<<8 | uint64(b)
	}
	return n
}
