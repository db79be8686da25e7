package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
)

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(hash starksig.Felt) (*Signature, error)
	PublicKey() PublicKey
}

var _ Signer = (*PrivateKey)(nil)

// PrivateKey is a STARK curve scalar in [1, N).
type PrivateKey struct {
	d   *big.Int
	pub PublicKey
}

// GenPrivKey returns a random new private key.
func GenPrivKey() *PrivateKey {
	d, err := randScalar()
	if err != nil {
		panic(err)
	}
	return newPrivateKey(d)
}

// PrivKeyFromScalar returns the private key for given scalar. The scalar
// must be in [1, N) where N is the curve order.
func PrivKeyFromScalar(scalar starksig.Felt) (*PrivateKey, error) {
	d := scalar.BigInt()
	if d.Sign() == 0 || d.Cmp(curveOrder) >= 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "private key out of range")
	}
	return newPrivateKey(d), nil
}

// PrivKeyFromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyFromSeed(seed []byte) *PrivateKey {
	buf := make([]byte, len(seed)+1)
	copy(buf, seed)
	for counter := 0; ; counter++ {
		buf[len(seed)] = byte(counter)
		sum := sha256.Sum256(buf)
		sum[0] &= 0x0f
		d := new(big.Int).SetBytes(sum[:])
		if d.Sign() > 0 && d.Cmp(curveOrder) < 0 {
			return newPrivateKey(d)
		}
	}
}

func newPrivateKey(d *big.Int) *PrivateKey {
	return &PrivateKey{d: d, pub: PublicKey{x: scalarBaseX(d)}}
}

// Scalar returns the secret scalar. Use it only for storing the key.
func (k *PrivateKey) Scalar() starksig.Felt {
	f, err := starksig.FeltFromBigInt(k.d)
	if err != nil {
		// N is smaller than the field modulus.
		panic(err)
	}
	return f
}

// PublicKey returns the corresponding stark key.
func (k *PrivateKey) PublicKey() PublicKey {
	return k.pub
}

// PublicKey is a stark key, the x coordinate of the public point.
type PublicKey struct {
	x starksig.Felt
}

// NewPublicKey returns the public key identified by given stark key. No
// curve membership check is done, an x coordinate without a matching point
// cannot verify any signature.
func NewPublicKey(starkKey starksig.Felt) PublicKey {
	return PublicKey{x: starkKey}
}

// ParsePublicKey returns the public key for given stark key, ensuring that
// it is the x coordinate of a curve point.
func ParsePublicKey(starkKey starksig.Felt) (PublicKey, error) {
	if starkKey.IsZero() {
		return PublicKey{}, errors.Wrap(errors.ErrEmpty, "stark key")
	}
	if _, ok := pointFromX(starkKey); !ok {
		return PublicKey{}, errors.Wrapf(errors.ErrInvalidInput, "%s is not on the curve", starkKey)
	}
	return PublicKey{x: starkKey}, nil
}

// Felt returns the stark key.
func (k PublicKey) Felt() starksig.Felt {
	return k.x
}

func (k PublicKey) String() string {
	return k.x.String()
}

// Signature is a STARK curve ECDSA signature.
type Signature struct {
	R starksig.Felt `json:"r"`
	S starksig.Felt `json:"s"`
}

// randScalar returns a uniformly distributed scalar in [1, N).
func randScalar() (*big.Int, error) {
	n, err := rand.Int(rand.Reader, new(big.Int).Sub(curveOrder, big.NewInt(1)))
	if err != nil {
		return nil, errors.Wrap(err, "read random")
	}
	return n.Add(n, big.NewInt(1)), nil
}
