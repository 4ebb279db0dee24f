package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var EthereumSepolia Network = NewEthereumSepolia()

type ethereumSepolia struct {
	*explorers.EtherscanLikeExplorer
}

func NewEthereumSepolia() *ethereumSepolia {
	result := &ethereumSepolia{explorers.NewEtherscanV2(11155111)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *ethereumSepolia) GetName() string {
	return "sepolia"
}

func (self *ethereumSepolia) GetChainID() int64 {
	return 11155111
}

func (self *ethereumSepolia) GetAlternativeNames() []string {
	return []string{}
}

func (self *ethereumSepolia) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *ethereumSepolia) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *ethereumSepolia) GetBlockTime() time.Duration {
	return 12 * time.Second
}

func (self *ethereumSepolia) GetNodeVariableName() string {
	return "SEPOLIA_NODE"
}

func (self *ethereumSepolia) GetDefaultNodes() map[string]string {
	return map[string]string{
		"sepolia": "https://rpc.sepolia.org",
	}
}

func (self *ethereumSepolia) GetMulticallContract() string {
	return Multicall3Contract
}
