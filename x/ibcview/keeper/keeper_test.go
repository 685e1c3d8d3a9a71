package keeper_test

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sort"
	"testing"
	"time"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	commitmenttypes "github.com/cosmos/ibc-go/v10/modules/core/23-commitment/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"
)

// memKVStore is a minimal in-memory corestore.KVStore, standing in for
// the real IAVL-backed store in these keeper-level unit tests.
type memKVStore struct {
	data map[string][]byte
}

func newMemKVStore() *memKVStore {
	return &memKVStore{data: make(map[string][]byte)}
}

func (s *memKVStore) Get(key []byte) ([]byte, error) {
	v, ok := s.data[string(key)]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (s *memKVStore) Has(key []byte) (bool, error) {
	_, ok := s.data[string(key)]
	return ok, nil
}

func (s *memKVStore) Set(key, value []byte) error {
	s.data[string(key)] = append([]byte(nil), value...)
	return nil
}

func (s *memKVStore) Delete(key []byte) error {
	delete(s.data, string(key))
	return nil
}

func (s *memKVStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return newMemIterator(s.data, start, end), nil
}

func (s *memKVStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	it := newMemIterator(s.data, start, end)
	for i, j := 0, len(it.keys)-1; i < j; i, j = i+1, j-1 {
		it.keys[i], it.keys[j] = it.keys[j], it.keys[i]
	}
	return it, nil
}

type memIterator struct {
	data map[string][]byte
	keys []string
	pos  int
}

func newMemIterator(data map[string][]byte, start, end []byte) *memIterator {
	var keys []string
	for k := range data {
		if k < string(start) {
			continue
		}
		if end != nil && k >= string(end) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &memIterator{data: data, keys: keys, pos: 0}
}

func (it *memIterator) Domain() (start, end []byte) { return nil, nil }
func (it *memIterator) Valid() bool                 { return it.pos < len(it.keys) }
func (it *memIterator) Next()                       { it.pos++ }
func (it *memIterator) Key() []byte                 { return []byte(it.keys[it.pos]) }
func (it *memIterator) Value() []byte               { return it.data[it.keys[it.pos]] }
func (it *memIterator) Error() error                { return nil }
func (it *memIterator) Close() error                { return nil }

// fakeStoreService always opens the same in-memory store, independent
// of the context it is given.
type fakeStoreService struct {
	store *memKVStore
}

func (f fakeStoreService) OpenKVStore(context.Context) corestore.KVStore { return f.store }

// testContext builds an sdk.Context at the given block height, the
// shape Keeper's HostHeight relies on. header is accepted for callers
// that also want a populated block header on the context, though
// getHeader itself now reads past/current headers from the store
// rather than from the context.
func testContext(height int64, header cmtproto.Header) sdk.Context {
	header.Height = height
	ctx := sdk.NewContext(nil, false, log.NewNopLogger())
	return ctx.WithBlockHeight(height).WithBlockHeader(header)
}

// encodeAny Any-wraps and protobuf-marshals msg, the same encoding the
// keeper's decode layer expects to find at a client/consensus state key.
func encodeAny(t *testing.T, msg gogoproto.Message) []byte {
	t.Helper()
	any, err := codectypes.NewAnyWithValue(msg)
	require.NoError(t, err)
	bz, err := gogoproto.Marshal(any)
	require.NoError(t, err)
	return bz
}

// consensusStateAt builds deterministic-but-distinguishable consensus
// state bytes for a given height, for seeding the fake store.
func consensusStateAt(t *testing.T, height int64) []byte {
	t.Helper()
	return encodeAny(t, &ibctm.ConsensusState{
		Timestamp:          timeAt(height),
		Root:               commitmenttypes.NewMerkleRoot(testHash(fmt.Sprintf("root-%d", height))),
		NextValidatorsHash: testHash(fmt.Sprintf("valhash-%d", height)),
	})
}

// timeAt derives a deterministic, distinguishable timestamp for a given
// height, shared by every fixture that needs one.
func timeAt(height int64) time.Time {
	return time.Unix(1_700_000_000+height, 0).UTC()
}

func testHash(seed string) []byte {
	sum := sha256.Sum256([]byte(seed))
	return sum[:]
}
