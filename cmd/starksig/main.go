package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// When a cmd function is callend it is given stdin, stdout and command line
// arguments except the program name and this command name. It is the
// responsibility of the command function to parse the arguments. Use os.Stderr
// to write error messages and logs.
//
// Commands are meant to be combined using a unix pipe. For example, two
// owners can sign a hash, build a bundle and verify it:
//
//	$ (starksig sign -key a.key -hash 0x67932; \
//	   starksig sign -key b.key -hash 0x67932) \
//	    | starksig bundle \
//	    | starksig verify -account treasury -hash 0x67932
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"accounts": cmdAccounts,
	"bundle":   cmdBundle,
	"genesis":  cmdGenesis,
	"hash":     cmdHash,
	"inspect":  cmdInspect,
	"keygen":   cmdKeygen,
	"pubkey":   cmdPubkey,
	"remove":   cmdRemove,
	"sign":     cmdSign,
	"signers":  cmdSigners,
	"verify":   cmdVerify,
	"version":  cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s signs and verifies STARK multisig bundles.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := runCommand(run, os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runCommand executes a command, returning an ErrPanic if it panics.
func runCommand(
	run func(input io.Reader, output io.Writer, args []string) error,
	input io.Reader,
	output io.Writer,
	args []string,
) (err error) {
	defer errors.Recover(&err)
	return run(input, output, args)
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, starksig.Version())
	return nil
}
