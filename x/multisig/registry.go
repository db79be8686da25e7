package multisig

import (
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/crypto"
	"github.com/iov-one/starksig/errors"
)

// maxOwners is the upper bound of owners a single account can have.
const maxOwners = 32

// OwnerSet is an immutable list of owner stark keys together with the
// number of owners that must sign.
type OwnerSet struct {
	// owners are sorted in ascending order.
	owners    []starksig.Felt
	threshold int
}

// NewOwnerSet validates given configuration and returns an owner set. The
// order of owners is not relevant.
func NewOwnerSet(threshold int, owners []starksig.Felt) (*OwnerSet, error) {
	sorted := make([]starksig.Felt, len(owners))
	copy(sorted, owners)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })

	var errs error
	switch n := len(sorted); {
	case n == 0:
		errs = errors.AppendField(errs, "Owners", errors.Wrap(errors.ErrInvalidModel, "no owners"))
	case n > maxOwners:
		errs = errors.AppendField(errs, "Owners", errors.Wrapf(errors.ErrInvalidModel, "more than %d owners", maxOwners))
	}
	seen := make(map[starksig.Felt]struct{}, len(owners))
	for i, pk := range owners {
		field := "Owners." + strconv.Itoa(i)
		if _, err := crypto.ParsePublicKey(pk); err != nil {
			desc := "zero stark key"
			if !errors.ErrEmpty.Is(err) {
				desc = "stark key not on the curve"
			}
			errs = errors.AppendField(errs, field, errors.Wrapf(errors.ErrInvalidModel, "%s %s", desc, pk))
			continue
		}
		if _, ok := seen[pk]; ok {
			errs = errors.AppendField(errs, field, errors.Wrapf(errors.ErrInvalidModel, "duplicated owner %s", pk))
		}
		seen[pk] = struct{}{}
	}
	if threshold < 1 || threshold > len(sorted) {
		errs = errors.AppendField(errs, "Threshold", errors.Wrapf(errors.ErrInvalidModel, "threshold %d with %d owners", threshold, len(sorted)))
	}
	if errs != nil {
		return nil, errs
	}
	return &OwnerSet{owners: sorted, threshold: threshold}, nil
}

// MustNewOwnerSet is like NewOwnerSet but panics on error.
func MustNewOwnerSet(threshold int, owners ...starksig.Felt) *OwnerSet {
	s, err := NewOwnerSet(threshold, owners)
	if err != nil {
		panic(err)
	}
	return s
}

// IsOwner returns true if given stark key belongs to the owner set.
func (s *OwnerSet) IsOwner(pk starksig.Felt) bool {
	i := sort.Search(len(s.owners), func(i int) bool { return s.owners[i].Cmp(pk) >= 0 })
	return i < len(s.owners) && s.owners[i].Equal(pk)
}

func (s *OwnerSet) Threshold() int {
	return s.threshold
}

func (s *OwnerSet) OwnerCount() int {
	return len(s.owners)
}

// Owners returns a copy of the owner keys, sorted ascending.
func (s *OwnerSet) Owners() []starksig.Felt {
	res := make([]starksig.Felt, len(s.owners))
	copy(res, s.owners)
	return res
}

// Snapshot returns the owner set itself. It allows a static owner set to
// be used as a SnapshotSource.
func (s *OwnerSet) Snapshot() *OwnerSet {
	return s
}

type ownerSetJSON struct {
	Threshold int             `json:"threshold"`
	Signers   []starksig.Felt `json:"signers"`
}

func (s *OwnerSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(ownerSetJSON{Threshold: s.threshold, Signers: s.owners})
}

// UnmarshalJSON decodes and validates an owner set.
func (s *OwnerSet) UnmarshalJSON(raw []byte) error {
	var enc ownerSetJSON
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "owner set: %s", err)
	}
	set, err := NewOwnerSet(enc.Threshold, enc.Signers)
	if err != nil {
		return err
	}
	*s = *set
	return nil
}

// SnapshotSource provides a consistent view of the owner set.
type SnapshotSource interface {
	Snapshot() *OwnerSet
}

var (
	_ SnapshotSource = (*OwnerSet)(nil)
	_ SnapshotSource = (*Registry)(nil)
)

// Registry holds the current owner set of a live account. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	current *OwnerSet
}

// NewRegistry returns a registry initialized with given owner set.
func NewRegistry(initial *OwnerSet) (*Registry, error) {
	if initial == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "owner set")
	}
	return &Registry{current: initial}, nil
}

// Snapshot returns the current owner set. A nil registry has none.
func (r *Registry) Snapshot() *OwnerSet {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Replace swaps the current owner set. Verifications that already took a
// snapshot are not affected.
func (r *Registry) Replace(next *OwnerSet) error {
	if next == nil {
		return errors.Wrap(errors.ErrEmpty, "owner set")
	}
	r.mu.Lock()
	r.current = next
	r.mu.Unlock()
	return nil
}
