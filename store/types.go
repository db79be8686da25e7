package store

import "github.com/iov-one/starksig"

// Move references for all storage types into this package
// for shorter names everywhere

type KVStore = starksig.KVStore
type ReadOnlyKVStore = starksig.ReadOnlyKVStore
type Iterator = starksig.Iterator

// Model groups together key and value to return.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair.
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}
