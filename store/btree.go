package store

import (
	"bytes"
	"sync"

	"github.com/google/btree"
	"github.com/iov-one/starksig/errors"
)

const (
	// DefaultFreeListSize is the size we hold for free node in btree
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// BTreeStore is an ordered in-memory KVStore. It is safe for concurrent
// use.
type BTreeStore struct {
	mu sync.RWMutex
	bt *btree.BTree
}

var _ KVStore = (*BTreeStore)(nil)

// MemStore returns a simple implementation useful for tests.
// There is no persistence here....
func MemStore() *BTreeStore {
	free := btree.NewFreeList(DefaultFreeListSize)
	return &BTreeStore{bt: btree.NewWithFreeList(2, free)}
}

// Set writes a copy of the value under given key.
func (b *BTreeStore) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrInvalidInput, "nil key")
	}
	b.mu.Lock()
	b.bt.ReplaceOrInsert(newSetItem(clone(key), clone(value)))
	b.mu.Unlock()
	return nil
}

// Delete removes given key. Deleting a missing key is not an error.
func (b *BTreeStore) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrInvalidInput, "nil key")
	}
	b.mu.Lock()
	b.bt.Delete(bkey{key})
	b.mu.Unlock()
	return nil
}

// Get returns a copy of the value or nil if the key does not exist.
func (b *BTreeStore) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "nil key")
	}
	b.mu.RLock()
	res := b.bt.Get(bkey{key})
	b.mu.RUnlock()
	if res == nil {
		return nil, nil
	}
	item, ok := res.(setItem)
	if !ok {
		return nil, errors.Wrapf(errors.ErrDatabase, "Unknown item in btree: %#v", res)
	}
	return clone(item.value), nil
}

// Has returns true if given key exists.
func (b *BTreeStore) Has(key []byte) (bool, error) {
	if key == nil {
		return false, errors.Wrap(errors.ErrInvalidInput, "nil key")
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.bt.Has(bkey{key}), nil
}

// Iterator over a domain of keys in ascending order. The result is
// preloaded so writes done while iterating are not visible.
func (b *BTreeStore) Iterator(start, end []byte) (Iterator, error) {
	var models []Model
	collect := func(i btree.Item) bool {
		item := i.(setItem)
		models = append(models, Pair(clone(item.key), clone(item.value)))
		return true
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if start == nil && end == nil {
		b.bt.Ascend(collect)
	} else if start == nil { // end != nil
		b.bt.AscendLessThan(bkey{end}, collect)
	} else if end == nil { // start != nil
		b.bt.AscendGreaterOrEqual(bkey{start}, collect)
	} else { // both != nil
		b.bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return NewSliceIterator(models), nil
}

/////////////////////////////////////////////////////////
// Items to write to btree

// we enforce all data in our btree implements keyer so we
// can compare nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item
// and may be used for queries or embedded in data to store
type bkey struct {
	key []byte
}

var _ keyer = bkey{}
var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{key}, value}
}

// clone returns a copy that is never nil, so that an empty value can be
// told apart from a missing one.
func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
