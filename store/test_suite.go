package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/iov-one/starksig/errors"
	"github.com/iov-one/starksig/sigtest/assert"
)

// TestSuite provides many methods that can be called in package-specific
// test code. Only the store being tested is customized (pass in
// constructor), the rest of the logic is generic to the KVStore interface.
//
// It removes duplication between btree_test.go and bolt/bolt_test.go, but
// can be used for any implementation of KVStore.
type TestSuite struct {
	makeBase TestStoreConstructor
}

type TestStoreConstructor func(t testing.TB) (base KVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{
		makeBase: constructor,
	}
}

// GetSet does basic sanity checks on a store.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase(t)
	defer cleanup()

	k, v := []byte("french"), []byte("fry")
	s.AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	// overwrite
	v2 := []byte("fries")
	assert.Nil(t, base.Set(k, v2))
	s.AssertGetHas(t, base, k, v2, true)

	// stored value must not alias the caller buffer
	v2[0] = 'X'
	s.AssertGetHas(t, base, k, []byte("fries"), true)

	k2, v3 := []byte("LA"), []byte("Dodgers")
	assert.Nil(t, base.Set(k2, v3))
	assert.Nil(t, base.Delete(k))
	s.AssertGetHas(t, base, k, nil, false)
	s.AssertGetHas(t, base, k2, v3, true)

	// deleting a missing key is fine
	assert.Nil(t, base.Delete([]byte("Bayern")))
}

// Iterator checks range queries over random data.
func (s *TestSuite) Iterator(t *testing.T) {
	const size = 50

	expect := sortModels(randModels(size, 8, 40))

	cases := map[string]struct {
		start, end []byte
		want       []Model
	}{
		"full range": {
			want: expect,
		},
		"start only": {
			start: expect[10].Key,
			want:  expect[10:],
		},
		"end only": {
			end:  expect[size-8].Key,
			want: expect[:size-8],
		},
		"both limits": {
			start: expect[17].Key,
			end:   expect[28].Key,
			want:  expect[17:28],
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase(t)
			defer cleanup()

			for _, m := range expect {
				assert.Nil(t, base.Set(m.Key, m.Value))
			}

			it, err := base.Iterator(tc.start, tc.end)
			assert.Nil(t, err)
			got, err := ReadAll(it)
			assert.Nil(t, err)
			assert.Equal(t, len(tc.want), len(got))
			for i := range tc.want {
				assertModel(t, tc.want[i], got[i])
			}
		})
	}
}

// IteratorEmpty ensures an empty store returns a done iterator.
func (s *TestSuite) IteratorEmpty(t *testing.T) {
	base, cleanup := s.makeBase(t)
	defer cleanup()

	it, err := base.Iterator(nil, nil)
	assert.Nil(t, err)
	defer it.Release()
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want done iterator, got %+v", err)
	}
}

// AssertGetHas makes sure that this key returns
// the given value or nil, and has is true iff
// the value is non-nil
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	if !bytes.Equal(val, got) {
		t.Fatalf("want %q value, got %q", val, got)
	}
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func assertModel(t testing.TB, want, got Model) {
	t.Helper()
	if !bytes.Equal(want.Key, got.Key) || !bytes.Equal(want.Value, got.Value) {
		t.Fatalf("want %X=%X, got %X=%X", want.Key, want.Value, got.Key, got.Value)
	}
}

// randModels produces a random set of models
func randModels(count, keySize, valueSize int) []Model {
	models := make([]Model, count)
	for i := range models {
		models[i].Key = randBytes(keySize)
		models[i].Value = randBytes(valueSize)
	}
	return models
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	if _, err := rand.Read(res); err != nil {
		panic(err)
	}
	return res
}

// sortModels returns a copy of the models sorted by key
func sortModels(models []Model) []Model {
	res := make([]Model, len(models))
	copy(res, models)
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Key, res[j].Key) < 0
	})
	return res
}
