package sigtest

import (
	"fmt"
	"path/filepath"
	"sort"
	"testing"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/crypto"
	"github.com/iov-one/starksig/store/bolt"
)

// NewKeys returns n deterministic private keys sorted ascending by their
// stark key. Keys returned by consecutive calls are the same.
func NewKeys(t testing.TB, n int) []*crypto.PrivateKey {
	t.Helper()
	keys := make([]*crypto.PrivateKey, n)
	for i := range keys {
		keys[i] = crypto.PrivKeyFromSeed([]byte(fmt.Sprintf("sigtest-key-%d", i)))
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].PublicKey().Felt().Cmp(keys[j].PublicKey().Felt()) < 0
	})
	return keys
}

// StarkKeys returns the stark keys of given signers, in the same order.
func StarkKeys(signers ...crypto.Signer) []starksig.Felt {
	res := make([]starksig.Felt, len(signers))
	for i, s := range signers {
		res[i] = s.PublicKey().Felt()
	}
	return res
}

// Signers converts private keys into a list of signers.
func Signers(keys ...*crypto.PrivateKey) []crypto.Signer {
	res := make([]crypto.Signer, len(keys))
	for i, k := range keys {
		res[i] = k
	}
	return res
}

// Triple returns the flat (stark key, r, s) encoding of a signature of
// given hash.
func Triple(t testing.TB, signer crypto.Signer, hash starksig.Felt) []starksig.Felt {
	t.Helper()
	sig, err := signer.Sign(hash)
	if err != nil {
		t.Fatalf("cannot sign: %+v", err)
	}
	return []starksig.Felt{signer.PublicKey().Felt(), sig.R, sig.S}
}

// SignBundle returns a flat bundle of signatures of given hash. Triples
// are in the order of signers, no sorting is done.
func SignBundle(t testing.TB, hash starksig.Felt, signers ...crypto.Signer) []starksig.Felt {
	t.Helper()
	var raw []starksig.Felt
	for _, s := range signers {
		raw = append(raw, Triple(t, s, hash)...)
	}
	return raw
}

// BoltStore returns a store kept in a temporary directory. It is closed
// when the test ends.
func BoltStore(t testing.TB) *bolt.Store {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "sigtest.db"))
	if err != nil {
		t.Fatalf("cannot open database: %+v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("cannot close database: %+v", err)
		}
	})
	return db
}
