package starksig

import (
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultLogger is used by all components that were not given a logger
// explicitly.
var DefaultLogger = log.NewNopLogger()
