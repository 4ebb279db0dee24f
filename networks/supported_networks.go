package networks

import (
	"fmt"
	"strings"
)

var supportedNetworks = []Network{
	EthereumMainnet,
	EthereumSepolia,
	BSCMainnet,
	BSCTestnet,
	Matic,
	ArbitrumMainnet,
	Optimism,
	Base,
	Avalanche,
	Fantom,
	TomoMainnet,
}

func AllNetworks() []Network {
	result := make([]Network, len(supportedNetworks))
	copy(result, supportedNetworks)
	return result
}

// GetNetwork looks a supported network up by its canonical name or one of
// its alternative names, case-insensitively.
func GetNetwork(name string) (Network, error) {
	name = strings.ToLower(strings.Trim(name, " "))
	for _, n := range supportedNetworks {
		if n.GetName() == name {
			return n, nil
		}
		for _, alt := range n.GetAlternativeNames() {
			if alt == name {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("network %s is not supported", name)
}

func GetNetworkByID(chainID int64) (Network, error) {
	for _, n := range supportedNetworks {
		if n.GetChainID() == chainID {
			return n, nil
		}
	}
	return nil, fmt.Errorf("chain id %d is not supported", chainID)
}
