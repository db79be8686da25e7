package starksig

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/iov-one/starksig/errors"
)

// FeltLength is the size in bytes of a big-endian encoded Felt.
const FeltLength = fp.Bytes

// Valid is returned by a successful signature check. It is the ASCII string
// "VALID" read as a big-endian integer, 0x56414c4944.
var Valid = FeltFromUint64(0x56414c4944)

// Felt is an element of the STARK field, an integer in [0, P) where
// P = 2^251 + 17*2^192 + 1.
//
// The zero value is a valid zero element. Felt values are immutable and
// safe to copy.
type Felt struct {
	v fp.Element
}

// FeltFromUint64 returns the Felt representing given integer.
func FeltFromUint64(n uint64) Felt {
	var f Felt
	f.v.SetUint64(n)
	return f
}

// FeltFromBigInt returns the Felt representing given integer. It fails if
// the value is negative or not smaller than the field modulus.
func FeltFromBigInt(n *big.Int) (Felt, error) {
	if n == nil || n.Sign() < 0 {
		return Felt{}, errors.Wrap(errors.ErrInvalidInput, "negative felt")
	}
	if n.Cmp(fp.Modulus()) >= 0 {
		return Felt{}, errors.Wrapf(errors.ErrOverflow, "felt 0x%x", n)
	}
	var f Felt
	f.v.SetBigInt(n)
	return f, nil
}

// FeltFromBytes interprets given bytes as a big-endian unsigned integer.
// Input longer than FeltLength is rejected.
func FeltFromBytes(b []byte) (Felt, error) {
	if len(b) > FeltLength {
		return Felt{}, errors.Wrapf(errors.ErrInvalidInput, "felt of %d bytes", len(b))
	}
	return FeltFromBigInt(new(big.Int).SetBytes(b))
}

// ParseFelt decodes a 0x prefixed hexadecimal or a decimal representation.
func ParseFelt(s string) (Felt, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Felt{}, errors.Wrap(errors.ErrEmpty, "felt")
	}
	base := 10
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		raw = raw[2:]
		base = 16
	}
	n, ok := new(big.Int).SetString(raw, base)
	if !ok {
		return Felt{}, errors.Wrapf(errors.ErrInvalidInput, "malformed felt %q", s)
	}
	return FeltFromBigInt(n)
}

// MustParseFelt is like ParseFelt but panics on error. Use it only for
// constants and in tests.
func MustParseFelt(s string) Felt {
	f, err := ParseFelt(s)
	if err != nil {
		panic(err)
	}
	return f
}

// BigInt returns a copy of the integer value.
func (f Felt) BigInt() *big.Int {
	return f.v.BigInt(new(big.Int))
}

// Bytes returns the big-endian encoding, left padded to FeltLength.
func (f Felt) Bytes() [FeltLength]byte {
	return f.v.Bytes()
}

// Element returns the underlying field element.
func (f Felt) Element() fp.Element {
	return f.v
}

// Cmp compares integer values and returns -1, 0 or +1.
func (f Felt) Cmp(o Felt) int {
	return f.v.Cmp(&o.v)
}

// Equal returns true if both felts represent the same value.
func (f Felt) Equal(o Felt) bool {
	return f.v.Equal(&o.v)
}

// IsZero returns true for the zero element.
func (f Felt) IsZero() bool {
	return f.v.IsZero()
}

// String returns the lowercase 0x prefixed hex representation without
// leading zeros.
func (f Felt) String() string {
	return fmt.Sprintf("0x%x", f.BigInt())
}

func (f Felt) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts a string holding a hex or decimal representation
// as well as a plain JSON number.
func (f *Felt) UnmarshalJSON(raw []byte) error {
	var enc string
	if len(raw) > 0 && raw[0] != '"' {
		enc = string(raw)
	} else if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	v, err := ParseFelt(enc)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Felts is a helper to build a list of felts from integers.
func Felts(ns ...uint64) []Felt {
	res := make([]Felt, len(ns))
	for i, n := range ns {
		res[i] = FeltFromUint64(n)
	}
	return res
}
