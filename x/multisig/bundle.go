package multisig

import (
	"sort"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/crypto"
	"github.com/iov-one/starksig/errors"
)

// TripleLen is the number of felts that encode a single signature.
const TripleLen = 3

// Triple is a single signature of a bundle.
type Triple struct {
	Signer    starksig.Felt
	Signature crypto.Signature
}

// DecodeBundle splits a flat bundle into triples. It only checks the
// structure, ordering and ownership are not validated.
func DecodeBundle(raw []starksig.Felt) ([]Triple, error) {
	if len(raw) == 0 || len(raw)%TripleLen != 0 {
		return nil, errors.Wrapf(ErrInvalidSignatureLength, "bundle of %d felts", len(raw))
	}
	triples := make([]Triple, len(raw)/TripleLen)
	for i := range triples {
		triples[i] = tripleAt(raw, i)
	}
	return triples, nil
}

func tripleAt(raw []starksig.Felt, i int) Triple {
	return Triple{
		Signer: raw[i*TripleLen],
		Signature: crypto.Signature{
			R: raw[i*TripleLen+1],
			S: raw[i*TripleLen+2],
		},
	}
}

// Bundle collects signatures in any order and produces the canonical flat
// encoding expected by the Verifier.
type Bundle struct {
	triples []Triple
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// Add appends a signature created by the owner of given stark key.
func (b *Bundle) Add(signer starksig.Felt, sig crypto.Signature) *Bundle {
	b.triples = append(b.triples, Triple{Signer: signer, Signature: sig})
	return b
}

// Sign signs given hash and appends the result.
func (b *Bundle) Sign(signer crypto.Signer, hash starksig.Felt) error {
	sig, err := signer.Sign(hash)
	if err != nil {
		return errors.Wrap(err, "sign")
	}
	b.Add(signer.PublicKey().Felt(), *sig)
	return nil
}

// Len returns the number of collected signatures.
func (b *Bundle) Len() int {
	return len(b.triples)
}

// Encode returns the flat bundle with triples sorted by stark key. Two
// signatures from the same signer cannot be encoded.
func (b *Bundle) Encode() ([]starksig.Felt, error) {
	if len(b.triples) == 0 {
		return nil, errors.Wrap(ErrInvalidSignatureLength, "empty bundle")
	}
	sorted := make([]Triple, len(b.triples))
	copy(sorted, b.triples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Signer.Cmp(sorted[j].Signer) < 0 })

	raw := make([]starksig.Felt, 0, len(sorted)*TripleLen)
	for i, t := range sorted {
		if i > 0 && t.Signer.Equal(sorted[i-1].Signer) {
			return nil, errors.Wrapf(ErrSignaturesNotSorted, "signer %s repeated", t.Signer)
		}
		raw = append(raw, t.Signer, t.Signature.R, t.Signature.S)
	}
	return raw, nil
}
