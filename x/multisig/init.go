package multisig

import (
	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct {
	// Logger is optional.
	Logger log.Logger
}

var _ starksig.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it in the
// database.
func (ini *Initializer) FromGenesis(opts starksig.Options, kv starksig.KVStore) error {
	var accounts []struct {
		Account   string          `json:"account"`
		Threshold int             `json:"threshold"`
		Signers   []starksig.Felt `json:"signers"`
	}
	if err := opts.ReadOptions("multisig", &accounts); err != nil {
		return err
	}

	logger := ini.Logger
	if logger == nil {
		logger = starksig.DefaultLogger
	}

	bucket := NewOwnerSetBucket()
	seen := make(map[string]struct{}, len(accounts))
	for i, a := range accounts {
		if _, ok := seen[a.Account]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "#%d account %q", i, a.Account)
		}
		seen[a.Account] = struct{}{}

		set, err := NewOwnerSet(a.Threshold, a.Signers)
		if err != nil {
			return errors.Wrapf(err, "#%d account %q", i, a.Account)
		}
		replaced, err := bucket.Has(kv, a.Account)
		if err != nil {
			return errors.Wrapf(err, "#%d account %q", i, a.Account)
		}
		if err := bucket.Save(kv, a.Account, set); err != nil {
			return errors.Wrapf(err, "cannot save #%d account", i)
		}
		if replaced {
			logger.Info("account replaced", "account", a.Account)
		}
		logger.Info("account loaded", "account", a.Account, "owners", set.OwnerCount(), "threshold", set.Threshold())
	}
	return nil
}
