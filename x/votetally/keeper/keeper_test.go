package keeper_test

import (
	"context"
	"sort"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// testContext builds a bare sdk.Context, the shape CalculateUpdated
// needs only for its logger.
func testContext() sdk.Context {
	return sdk.NewContext(nil, false, log.NewNopLogger())
}

// memKVStore is a minimal in-memory corestore.KVStore backing the
// collections.Map under test, standing in for the real IAVL store.
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
