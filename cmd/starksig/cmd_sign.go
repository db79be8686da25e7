package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/crypto"
	"github.com/iov-one/starksig/x/multisig"
)

func cmdHash(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the Starknet keccak hash of a text. When no text is given, the
whole input is hashed.
`)
		fl.PrintDefaults()
	}
	var (
		textFl = fl.String("text", "", "Text to hash.")
	)
	fl.Parse(args)

	data := []byte(*textFl)
	if *textFl == "" {
		raw, err := ioutil.ReadAll(input)
		if err != nil {
			return fmt.Errorf("cannot read input: %s", err)
		}
		data = raw
	}
	_, err := fmt.Fprintln(output, crypto.StarknetKeccak(data))
	return err
}

func cmdSign(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign a message hash. The stark key and the signature are written as a
single "<stark key> <r> <s>" line that can be consumed by the bundle command.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use STARKSIG_PRIV_KEY environment variable to set it.")
		hashFl = flFelt(fl, "hash", "", "Message hash to sign, hex or decimal.")
	)
	fl.Parse(args)

	if hashFl.empty {
		flagDie("-hash is required")
	}

	key, err := readPrivKey(*keyPathFl)
	if err != nil {
		return err
	}
	sig, err := key.Sign(hashFl.value)
	if err != nil {
		return fmt.Errorf("cannot sign: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s %s %s\n", key.PublicKey(), sig.R, sig.S)
	return err
}

func cmdBundle(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read "<stark key> <r> <s>" lines from the input, as produced by the sign
command, and write the canonical bundle as a JSON array of felts.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	b := multisig.NewBundle()
	sc := bufio.NewScanner(input)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != multisig.TripleLen {
			return fmt.Errorf("line %d: want %d values, got %d", line, multisig.TripleLen, len(fields))
		}
		var felts [multisig.TripleLen]starksig.Felt
		for i, f := range fields {
			v, err := starksig.ParseFelt(f)
			if err != nil {
				return fmt.Errorf("line %d: %s", line, err)
			}
			felts[i] = v
		}
		b.Add(felts[0], crypto.Signature{R: felts[1], S: felts[2]})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("cannot read input: %s", err)
	}

	raw, err := b.Encode()
	if err != nil {
		return fmt.Errorf("cannot build bundle: %s", err)
	}
	return json.NewEncoder(output).Encode(raw)
}

func cmdInspect(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a bundle, a JSON array of felts, from the input and write one
"<stark key> <r> <s>" line per signature. The output is accepted by the
bundle command.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	var raw []starksig.Felt
	if err := json.NewDecoder(input).Decode(&raw); err != nil {
		return fmt.Errorf("cannot decode bundle: %s", err)
	}
	triples, err := multisig.DecodeBundle(raw)
	if err != nil {
		return err
	}
	for _, t := range triples {
		fmt.Fprintf(output, "%s %s %s\n", t.Signer, t.Signature.R, t.Signature.S)
	}
	return nil
}
