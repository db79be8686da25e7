package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/starksig"
)

// flagDie terminates the program when a command line flag (or argument) was
// not provided or its value is not valid.
func flagDie(description string, args ...interface{}) {
	msg := fmt.Sprintf(description, args...)
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}

// flFelt returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. Both
// hex and decimal notation are accepted. An empty default leaves the value
// unset.
// If given value cannot be deserialized to required type, process is
// terminated.
func flFelt(fl *flag.FlagSet, name, defaultVal, usage string) *feltValue {
	v := feltValue{empty: true}
	if defaultVal != "" {
		if err := v.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q felt flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&v, name, usage)
	return &v
}

type feltValue struct {
	value starksig.Felt
	empty bool
}

func (v feltValue) String() string {
	if v.empty {
		return ""
	}
	return v.value.String()
}

func (v *feltValue) Set(raw string) error {
	f, err := starksig.ParseFelt(raw)
	if err != nil {
		return err
	}
	v.value = f
	v.empty = false
	return nil
}
