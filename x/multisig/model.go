package multisig

import (
	"strings"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
)

const (
	// BucketName is the key prefix under which owner sets are stored.
	BucketName = "multisig"

	maxAccountLength = 128
)

// OwnerSetBucket stores protobuf encoded owner sets indexed by account
// name.
type OwnerSetBucket struct {
	prefix []byte
}

// NewOwnerSetBucket initializes an OwnerSetBucket with default name.
func NewOwnerSetBucket() OwnerSetBucket {
	return OwnerSetBucket{prefix: []byte(BucketName + ":")}
}

func (b OwnerSetBucket) key(account string) ([]byte, error) {
	if err := validateAccount(account); err != nil {
		return nil, err
	}
	return append(append([]byte{}, b.prefix...), account...), nil
}

func validateAccount(account string) error {
	switch {
	case account == "":
		return errors.Wrap(errors.ErrEmpty, "account")
	case len(account) > maxAccountLength:
		return errors.Wrapf(errors.ErrInvalidInput, "account longer than %d", maxAccountLength)
	case strings.ContainsAny(account, " \t\n"):
		return errors.Wrapf(errors.ErrInvalidInput, "account %q contains white space", account)
	}
	return nil
}

// Save writes the owner set of given account, replacing any previous one.
func (b OwnerSetBucket) Save(kv starksig.KVStore, account string, set *OwnerSet) error {
	key, err := b.key(account)
	if err != nil {
		return err
	}
	if set == nil {
		return errors.Wrap(errors.ErrEmpty, "owner set")
	}
	raw, err := marshalOwnerSet(set)
	if err != nil {
		return err
	}
	if err := kv.Set(key, raw); err != nil {
		return errors.Wrapf(err, "save %q", account)
	}
	return nil
}

// Get returns the owner set of given account or ErrNotFound.
func (b OwnerSetBucket) Get(kv starksig.ReadOnlyKVStore, account string) (*OwnerSet, error) {
	key, err := b.key(account)
	if err != nil {
		return nil, err
	}
	raw, err := kv.Get(key)
	if err != nil {
		return nil, errors.Wrap(err, "bucket lookup")
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "account %q", account)
	}
	set, err := unmarshalOwnerSet(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "account %q", account)
	}
	return set, nil
}

// Has returns true if an owner set is stored for given account.
func (b OwnerSetBucket) Has(kv starksig.ReadOnlyKVStore, account string) (bool, error) {
	key, err := b.key(account)
	if err != nil {
		return false, err
	}
	return kv.Has(key)
}

// Delete removes the owner set of given account. Deleting a missing
// account is not an error.
func (b OwnerSetBucket) Delete(kv starksig.KVStore, account string) error {
	key, err := b.key(account)
	if err != nil {
		return err
	}
	return kv.Delete(key)
}

// Accounts returns the names of all stored accounts in ascending order.
func (b OwnerSetBucket) Accounts(kv starksig.ReadOnlyKVStore) ([]string, error) {
	end := append([]byte{}, b.prefix...)
	end[len(end)-1]++
	it, err := kv.Iterator(b.prefix, end)
	if err != nil {
		return nil, errors.Wrap(err, "iterator")
	}
	defer it.Release()

	var res []string
	for {
		key, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		} else if err != nil {
			return nil, err
		}
		res = append(res, string(key[len(b.prefix):]))
	}
}

// LoadRegistry returns a live registry initialized with the stored owner
// set of given account.
func LoadRegistry(kv starksig.ReadOnlyKVStore, account string) (*Registry, error) {
	set, err := NewOwnerSetBucket().Get(kv, account)
	if err != nil {
		return nil, err
	}
	return NewRegistry(set)
}
