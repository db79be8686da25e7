package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
	"github.com/iov-one/starksig/store/bolt"
	"github.com/iov-one/starksig/x/multisig"
)

func cmdGenesis(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Load accounts declared in the "multisig" section of a genesis file into the
database. Accounts already present are overwritten.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", defaultDBPath(),
			"Path to the database file. You can use STARKSIG_DB environment variable to set it.")
		genesisFl = fl.String("genesis", "genesis.json", "Path to the genesis file.")
		debugFl   = fl.Bool("debug", false, "Enable debug logs.")
	)
	fl.Parse(args)

	gen, err := starksig.LoadGenesis(*genesisFl)
	if err != nil {
		return err
	}

	db, err := bolt.Open(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()

	ini := starksig.ChainInitializers(
		&multisig.Initializer{Logger: newLogger(*debugFl)},
	)
	if err := ini.FromGenesis(gen.AppState, db); err != nil {
		return errors.Wrap(err, "genesis")
	}
	return db.Close()
}

func cmdVerify(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a bundle, a JSON array of felts, from the input and verify it against
the owners of an account. When the bundle is valid, 0x56414c4944 is written.
Otherwise "rejected <code> <cause>" is written and the command fails.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", defaultDBPath(),
			"Path to the database file. You can use STARKSIG_DB environment variable to set it.")
		accountFl = fl.String("account", "", "Name of the account.")
		hashFl    = flFelt(fl, "hash", "", "Signed message hash, hex or decimal.")
		debugFl   = fl.Bool("debug", false, "Enable debug logs.")
	)
	fl.Parse(args)

	if hashFl.empty {
		flagDie("-hash is required")
	}

	var bundle []starksig.Felt
	if err := json.NewDecoder(input).Decode(&bundle); err != nil {
		return fmt.Errorf("cannot decode bundle: %s", err)
	}

	db, err := bolt.Open(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()

	reg, err := multisig.LoadRegistry(db, *accountFl)
	if err != nil {
		return err
	}
	verifier := multisig.NewVerifier(reg, multisig.WithLogger(newLogger(*debugFl)))
	res, err := verifier.IsValidSignature(hashFl.value, bundle)
	if err != nil {
		code, cause := errors.CodeInfo(err, false)
		fmt.Fprintf(output, "rejected %d %s\n", code, cause)
		return errors.Wrap(err, "bundle rejected")
	}
	_, err = fmt.Fprintln(output, res)
	return err
}

func cmdSigners(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the threshold and the sorted stark keys of the owners of an
account.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", defaultDBPath(),
			"Path to the database file. You can use STARKSIG_DB environment variable to set it.")
		accountFl = fl.String("account", "", "Name of the account.")
		jsonFl    = fl.Bool("json", false, "Write the owner set as JSON, as declared in a genesis file.")
	)
	fl.Parse(args)

	db, err := bolt.Open(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()

	set, err := multisig.NewOwnerSetBucket().Get(db, *accountFl)
	if err != nil {
		return err
	}
	if *jsonFl {
		return json.NewEncoder(output).Encode(set)
	}
	fmt.Fprintf(output, "threshold %d of %d\n", set.Threshold(), set.OwnerCount())
	for _, pk := range set.Owners() {
		fmt.Fprintln(output, pk)
	}
	return nil
}

func cmdAccounts(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the name and the threshold of every account in the database.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", defaultDBPath(),
			"Path to the database file. You can use STARKSIG_DB environment variable to set it.")
	)
	fl.Parse(args)

	db, err := bolt.Open(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()

	bucket := multisig.NewOwnerSetBucket()
	accounts, err := bucket.Accounts(db)
	if err != nil {
		return err
	}
	for _, name := range accounts {
		set, err := bucket.Get(db, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "%s\t%d of %d\n", name, set.Threshold(), set.OwnerCount())
	}
	return nil
}

func cmdRemove(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Remove an account from the database. Bundles for a removed account are no
longer accepted.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", defaultDBPath(),
			"Path to the database file. You can use STARKSIG_DB environment variable to set it.")
		accountFl = fl.String("account", "", "Name of the account.")
	)
	fl.Parse(args)

	db, err := bolt.Open(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()

	bucket := multisig.NewOwnerSetBucket()
	switch ok, err := bucket.Has(db, *accountFl); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "account %q", *accountFl)
	}
	if err := bucket.Delete(db, *accountFl); err != nil {
		return err
	}
	return db.Close()
}
