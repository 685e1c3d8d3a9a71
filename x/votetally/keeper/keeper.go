package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"

	"github.com/tokenize-x/ibc-ledger-core/x/votetally/types"
)

// Keeper persists one Tally per (event kind, event ID) pair, Borsh-encoded
// through collections.Map.
type Keeper struct {
	Schema  collections.Schema
	Tallies collections.Map[collections.Pair[string, string], types.Tally]
}

// NewKeeper builds a Keeper.
func NewKeeper(storeService storetypes.KVStoreService) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		Tallies: collections.NewMap(
			sb,
			collections.NewPrefix(types.StoreKeyPrefix),
			"tallies",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			types.NewBorshValueCodec[types.Tally]("Tally"),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// LoadTally reads the current tally for (eventKind, eventID), returning
// ZeroTally if no vote has been recorded yet.
func (k Keeper) LoadTally(ctx context.Context, eventKind, eventID string) (types.Tally, error) {
	tally, err := k.Tallies.Get(ctx, collections.Join(eventKind, eventID))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ZeroTally(), nil
		}
		return types.Tally{}, err
	}
	return tally, nil
}

// SaveTally persists tally for (eventKind, eventID).
func (k Keeper) SaveTally(ctx context.Context, eventKind, eventID string, tally types.Tally) error {
	return k.Tallies.Set(ctx, collections.Join(eventKind, eventID), tally)
}
