package crypto

import (
	"math/big"
	"testing"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/sigtest/assert"
)

func TestStarkSigning(t *testing.T) {
	private := GenPrivKey()
	public := private.PublicKey()

	msg := starksig.FeltFromUint64(424242)
	msg2 := starksig.MustParseFelt("0x2c4c8a2b5d1f0e04c7c0a6a2d77f5c3e1b1b0f61c2c6a0b3f6e1bd9b4a7a18")

	sig, err := private.Sign(msg)
	assert.Nil(t, err)
	sig2, err := private.Sign(msg2)
	assert.Nil(t, err)

	if sig.R.Equal(sig2.R) && sig.S.Equal(sig2.S) {
		t.Fatal("different messages produce the same signature")
	}

	if !public.Verify(msg, sig) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if !public.Verify(msg2, sig2) {
		t.Fatal("cannot verify a message signed with this public key")
	}

	if public.Verify(msg, sig2) {
		t.Fatal("verified message signature of the wrong message")
	}
	if public.Verify(msg2, sig) {
		t.Fatal("verified message signature of the wrong message")
	}

	other := GenPrivKey().PublicKey()
	if other.Verify(msg, sig) {
		t.Fatal("verified a signature with a different public key")
	}

	if public.Verify(msg, &Signature{}) {
		t.Fatal("verified an empty signature of a message")
	}
	if public.Verify(msg, nil) {
		t.Fatal("verified a nil signature of a message")
	}
}

func TestKnownSignatures(t *testing.T) {
	cases := map[string]struct {
		starkKey string
		hash     uint64
		r        string
		s        string
		want     bool
	}{
		"valid signature": {
			starkKey: "0x77a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43",
			hash:     424242,
			r:        "0x2abbefdcbf731195ee2acd186441eb536e86f888327b3655cffbd07b57dbf26",
			s:        "0x1689c4b24fb4c5aaba625b2b83c2507544fd93f6c29be6f38abaac7ad77edad",
			want:     true,
		},
		"valid signature of a small key": {
			starkKey: "0x743829e0a179f8afe223fc8112dfc8d024ab6b235fd42283c4f5970259ce7b7",
			hash:     424242,
			r:        "0x5eeb3e0d88756352e5b7015667431490b631ea109bb6e31d65bb3bef604c186",
			s:        "0x27e409474ef309836726e9359f8b2f14372e8eb5351f99d8b2f77c9100f1dac",
			want:     true,
		},
		"wrong hash": {
			starkKey: "0x77a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43",
			hash:     424243,
			r:        "0x2abbefdcbf731195ee2acd186441eb536e86f888327b3655cffbd07b57dbf26",
			s:        "0x1689c4b24fb4c5aaba625b2b83c2507544fd93f6c29be6f38abaac7ad77edad",
			want:     false,
		},
		"signature of another key": {
			starkKey: "0x743829e0a179f8afe223fc8112dfc8d024ab6b235fd42283c4f5970259ce7b7",
			hash:     424242,
			r:        "0x2abbefdcbf731195ee2acd186441eb536e86f888327b3655cffbd07b57dbf26",
			s:        "0x1689c4b24fb4c5aaba625b2b83c2507544fd93f6c29be6f38abaac7ad77edad",
			want:     false,
		},
		"r above 2^251": {
			starkKey: "0x77a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43",
			hash:     424242,
			r:        "0x800000000000000000000000000000000000000000000000000000000000000",
			s:        "0x1689c4b24fb4c5aaba625b2b83c2507544fd93f6c29be6f38abaac7ad77edad",
			want:     false,
		},
		"zero s": {
			starkKey: "0x77a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43",
			hash:     424242,
			r:        "0x2abbefdcbf731195ee2acd186441eb536e86f888327b3655cffbd07b57dbf26",
			s:        "0x0",
			want:     false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			pub := NewPublicKey(starksig.MustParseFelt(tc.starkKey))
			sig := &Signature{R: starksig.MustParseFelt(tc.r), S: starksig.MustParseFelt(tc.s)}
			if got := pub.Verify(starksig.FeltFromUint64(tc.hash), sig); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSignRejectsLargeHash(t *testing.T) {
	private := PrivKeyFromSeed([]byte("alice"))
	_, err := private.Sign(starksig.MustParseFelt("0x800000000000000000000000000000000000000000000000000000000000000"))
	if err == nil {
		t.Fatal("want an error")
	}
}

func TestVerifyRejectsLargeHash(t *testing.T) {
	public := NewPublicKey(starksig.MustParseFelt("0x77a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43"))
	sig := &Signature{
		R: starksig.MustParseFelt("0x2abbefdcbf731195ee2acd186441eb536e86f888327b3655cffbd07b57dbf26"),
		S: starksig.MustParseFelt("0x1689c4b24fb4c5aaba625b2b83c2507544fd93f6c29be6f38abaac7ad77edad"),
	}
	hash := starksig.FeltFromUint64(424242)
	if !public.Verify(hash, sig) {
		t.Fatal("signature must verify")
	}

	// hash + N is a valid felt above 2^251 that reduces to the same
	// scalar, only the range check can reject it.
	shifted, err := starksig.FeltFromBigInt(new(big.Int).Add(hash.BigInt(), curveOrder))
	assert.Nil(t, err)
	if public.Verify(shifted, sig) {
		t.Fatal("hash above 2^251 must be rejected")
	}
}

func TestNegatedPointIsAccepted(t *testing.T) {
	// Signing with N-d produces the point -Q which shares the stark key
	// with Q, so its signatures must verify under the same stark key.
	private := PrivKeyFromSeed([]byte("alice"))
	negated := newPrivateKey(new(big.Int).Sub(curveOrder, private.d))
	assert.Equal(t, private.PublicKey(), negated.PublicKey())

	hash := starksig.FeltFromUint64(424242)
	sig, err := negated.Sign(hash)
	assert.Nil(t, err)
	if !private.PublicKey().Verify(hash, sig) {
		t.Fatal("signature of the negated key must verify")
	}
}
