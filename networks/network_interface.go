package networks

import (
	"time"
)

type Network interface {
	GetName() string
	GetChainID() int64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() int64
	GetBlockTime() time.Duration

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	// GetMulticallContract returns the address of the deployed aggregator
	// contract on this chain, empty string when the chain has none.
	GetMulticallContract() string

	GetABIString(address string) (string, error)
}
