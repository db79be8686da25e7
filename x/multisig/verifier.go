package multisig

import (
	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/crypto"
	"github.com/iov-one/starksig/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Verifier checks signature bundles against the owner set provided by its
// source.
type Verifier struct {
	source SnapshotSource
	logger log.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger used to report rejected bundles.
func WithLogger(l log.Logger) Option {
	return func(v *Verifier) {
		v.logger = l
	}
}

// NewVerifier returns a verifier that reads owner sets from given source.
func NewVerifier(source SnapshotSource, opts ...Option) *Verifier {
	v := &Verifier{
		source: source,
		logger: starksig.DefaultLogger,
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// IsValidSignature returns starksig.Valid if the bundle is accepted. On
// failure the zero felt is returned together with the cause.
func (v *Verifier) IsValidSignature(hash starksig.Felt, bundle []starksig.Felt) (starksig.Felt, error) {
	if err := v.Verify(hash, bundle); err != nil {
		return starksig.Felt{}, err
	}
	return starksig.Valid, nil
}

// Verify returns nil if the bundle holds at least threshold signatures of
// the hash, from distinct owners, sorted by stark key. Every signature in
// the bundle must be valid.
func (v *Verifier) Verify(hash starksig.Felt, bundle []starksig.Felt) error {
	if v.source == nil {
		return errors.Wrap(errors.ErrInvalidState, "no owner set source")
	}
	set := v.source.Snapshot()
	if set == nil {
		return errors.Wrap(errors.ErrInvalidState, "no owner set")
	}

	if len(bundle) == 0 || len(bundle)%TripleLen != 0 {
		return v.reject(-1, ErrInvalidSignatureLength, "bundle of %d felts", len(bundle))
	}
	n := len(bundle) / TripleLen
	if n < set.Threshold() {
		return v.reject(-1, ErrInvalidSignatureLength, "%d signatures, threshold is %d", n, set.Threshold())
	}

	// Owner keys are never zero, so zero is below every valid key.
	var last starksig.Felt
	for i := 0; i < n; i++ {
		t := tripleAt(bundle, i)
		if t.Signer.Cmp(last) <= 0 {
			return v.reject(i, ErrSignaturesNotSorted, "signer %s at %d", t.Signer, i)
		}
		if !set.IsOwner(t.Signer) {
			return v.reject(i, ErrNotASigner, "signer %s at %d", t.Signer, i)
		}
		if !crypto.NewPublicKey(t.Signer).Verify(hash, &t.Signature) {
			return v.reject(i, ErrInvalidSignature, "signer %s at %d", t.Signer, i)
		}
		last = t.Signer
	}
	return nil
}

// reject logs the failure. The index is -1 when the bundle is rejected as a
// whole.
func (v *Verifier) reject(index int, cause *errors.Error, format string, args ...interface{}) error {
	v.logger.Debug("bundle rejected", "cause", cause.Error(), "code", cause.Code(), "index", index)
	return errors.Wrapf(cause, format, args...)
}
