package crypto

import (
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
)

// maxSignAttempts bounds the nonce loop. An attempt is retried when r or w
// is not below 2^251 or s is zero, which happens with probability about 2^-55.
const maxSignAttempts = 64

var (
	curveOrder = fr.Modulus()

	// elementBound is 2^251. Signature components and message hashes
	// must be below it.
	elementBound = new(big.Int).Lsh(big.NewInt(1), 251)

	generator starkcurve.G1Jac

	// curveB is the constant term of y^2 = x^3 + x + b.
	curveB fp.Element
)

func init() {
	var g starkcurve.G1Affine
	generator, g = starkcurve.Generators()

	var x3 fp.Element
	x3.Square(&g.X).Mul(&x3, &g.X)
	curveB.Square(&g.Y).Sub(&curveB, &x3).Sub(&curveB, &g.X)
}

// Sign returns a signature of given hash. The hash must be below 2^251.
func (k *PrivateKey) Sign(hash starksig.Felt) (*Signature, error) {
	z := hash.BigInt()
	if z.Cmp(elementBound) >= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "hash %s exceeds 2^251", hash)
	}

	for i := 0; i < maxSignAttempts; i++ {
		nonce, err := randScalar()
		if err != nil {
			return nil, err
		}
		r := scalarBaseX(nonce).BigInt()
		if !belowBound(r) {
			continue
		}

		// s = nonce^-1 * (z + r*d) mod N
		s := new(big.Int).Mul(r, k.d)
		s.Add(s, z).Mod(s, curveOrder)
		if s.Sign() == 0 {
			continue
		}
		s.Mul(s, new(big.Int).ModInverse(nonce, curveOrder)).Mod(s, curveOrder)
		if s.Sign() == 0 {
			continue
		}
		if w := new(big.Int).ModInverse(s, curveOrder); !belowBound(w) {
			continue
		}
		return &Signature{R: mustFelt(r), S: mustFelt(s)}, nil
	}
	return nil, errors.Wrap(errors.ErrInvalidState, "no usable nonce found")
}

// Verify returns true if given signature of the hash was created with the
// private key matching this stark key.
func (k PublicKey) Verify(hash starksig.Felt, sig *Signature) bool {
	if sig == nil {
		return false
	}
	r := sig.R.BigInt()
	s := sig.S.BigInt()
	z := hash.BigInt()

	if !belowBound(r) || z.Cmp(elementBound) >= 0 {
		return false
	}
	if s.Sign() == 0 || s.Cmp(curveOrder) >= 0 {
		return false
	}
	w := new(big.Int).ModInverse(s, curveOrder)
	if w == nil || !belowBound(w) {
		return false
	}

	q, ok := pointFromX(k.x)
	if !ok {
		return false
	}

	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, curveOrder)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, curveOrder)

	var zw, rw, qJac starkcurve.G1Jac
	zw.ScalarMultiplication(&generator, u1)
	qJac.FromAffine(&q)
	rw.ScalarMultiplication(&qJac, u2)

	var sum starkcurve.G1Jac
	sum.Set(&zw).AddAssign(&rw)
	if xEquals(&sum, r) {
		return true
	}
	var diff starkcurve.G1Jac
	diff.Set(&zw).SubAssign(&rw)
	return xEquals(&diff, r)
}

// belowBound returns true if 1 <= n < 2^251.
func belowBound(n *big.Int) bool {
	return n.Sign() > 0 && n.Cmp(elementBound) < 0
}

// scalarBaseX returns the x coordinate of d*G.
func scalarBaseX(d *big.Int) starksig.Felt {
	var p starkcurve.G1Jac
	p.ScalarMultiplication(&generator, d)
	var a starkcurve.G1Affine
	a.FromJacobian(&p)
	return mustFelt(a.X.BigInt(new(big.Int)))
}

func xEquals(p *starkcurve.G1Jac, x *big.Int) bool {
	if p.Z.IsZero() {
		return false
	}
	var a starkcurve.G1Affine
	a.FromJacobian(p)
	return a.X.BigInt(new(big.Int)).Cmp(x) == 0
}

// pointFromX returns a curve point with given x coordinate. Any of the two
// possible points is returned, as both share the same stark key.
func pointFromX(x starksig.Felt) (starkcurve.G1Affine, bool) {
	var p starkcurve.G1Affine
	p.X = x.Element()

	var rhs fp.Element
	rhs.Square(&p.X).Mul(&rhs, &p.X).Add(&rhs, &p.X).Add(&rhs, &curveB)
	if p.Y.Sqrt(&rhs) == nil {
		return p, false
	}
	return p, true
}

func mustFelt(n *big.Int) starksig.Felt {
	f, err := starksig.FeltFromBigInt(n)
	if err != nil {
		panic(err)
	}
	return f
}
