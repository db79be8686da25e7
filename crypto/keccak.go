package crypto

import (
	"github.com/iov-one/starksig"
	"golang.org/x/crypto/sha3"
)

// StarknetKeccak returns keccak256 of given data truncated to its low 250
// bits. This is how Starknet maps names to felts, for example entry point
// selectors.
func StarknetKeccak(data []byte) starksig.Felt {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	sum := h.Sum(nil)
	sum[0] &= 0x03
	f, err := starksig.FeltFromBytes(sum)
	if err != nil {
		panic(err)
	}
	return f
}
