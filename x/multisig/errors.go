package multisig

import (
	"github.com/iov-one/starksig/errors"
)

// multisig takes 1400-1403
var (
	// ErrInvalidSignatureLength is returned when the bundle is not a
	// positive multiple of the triple size or carries fewer signatures
	// than the threshold.
	ErrInvalidSignatureLength = errors.Register(1400, "invalid-signature-length")

	// ErrSignaturesNotSorted is returned when stark keys are not in a
	// strictly ascending order. This covers repeated signers too.
	ErrSignaturesNotSorted = errors.Register(1401, "signatures-not-sorted")

	ErrNotASigner       = errors.Register(1402, "not-a-signer")
	ErrInvalidSignature = errors.Register(1403, "invalid-signature")
)
