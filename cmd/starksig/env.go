package main

import (
	"os"

	"github.com/tendermint/tendermint/libs/log"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func defaultKeyPath() string {
	return env("STARKSIG_PRIV_KEY", os.Getenv("HOME")+"/.starksig.priv.key")
}

func defaultDBPath() string {
	return env("STARKSIG_DB", os.Getenv("HOME")+"/.starksig.db")
}

// newLogger returns a logger writing to stderr. Only info and above is
// written unless debug is set.
func newLogger(debug bool) log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	if debug {
		return log.NewFilter(logger, log.AllowDebug())
	}
	return log.NewFilter(logger, log.AllowInfo())
}
