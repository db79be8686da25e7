package crypto

import (
	"testing"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
	"github.com/iov-one/starksig/sigtest/assert"
)

func TestPrivKeyFromScalar(t *testing.T) {
	cases := map[string]struct {
		scalar      string
		wantErr     *errors.Error
		wantStarkey string
	}{
		"one is the generator": {
			scalar:      "0x1",
			wantStarkey: "0x1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca",
		},
		"known key": {
			scalar:      "0x3c1e9550e66958296d11b60f8e8e7a7ad990d07fa65d5f7652c4a6c87d4e3cc",
			wantStarkey: "0x77a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43",
		},
		"zero": {
			scalar:  "0x0",
			wantErr: errors.ErrInvalidInput,
		},
		"curve order": {
			scalar:  "0x800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f",
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			key, err := PrivKeyFromScalar(starksig.MustParseFelt(tc.scalar))
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantStarkey, key.PublicKey().String())
			assert.Equal(t, starksig.MustParseFelt(tc.scalar), key.Scalar())
		})
	}
}

func TestPrivKeyFromSeed(t *testing.T) {
	cases := map[string]struct {
		seed       []byte
		wantScalar string
		wantPub    string
	}{
		"name": {
			seed:       []byte("alice"),
			wantScalar: "0x2003b7b78e2e0cd7fe40a7640341f0edfbf4390ee704ed9745a25d39ccd1020",
			wantPub:    "0x1ff6071226fb5287dbce675f69f0e5f228ff186b73f925de053f0ec124869b7",
		},
		"zero bytes": {
			seed:       make([]byte, 32),
			wantScalar: "0x2f02cf2ac0074619e6d747c35e08b29431a16943ddf81cfd9065c004ee6364a",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			key := PrivKeyFromSeed(tc.seed)
			assert.Equal(t, tc.wantScalar, key.Scalar().String())
			if tc.wantPub != "" {
				assert.Equal(t, tc.wantPub, key.PublicKey().String())
			}
			again := PrivKeyFromSeed(tc.seed)
			assert.Equal(t, key.PublicKey(), again.PublicKey())
		})
	}
}

func TestParsePublicKey(t *testing.T) {
	gen := starksig.MustParseFelt("0x1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca")
	pub, err := ParsePublicKey(gen)
	assert.Nil(t, err)
	assert.Equal(t, gen, pub.Felt())

	if _, err := ParsePublicKey(starksig.Felt{}); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want empty error, got %+v", err)
	}
}
