package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var Avalanche Network = NewAvalanche()

type avalanche struct {
	*explorers.EtherscanLikeExplorer
}

func NewAvalanche() *avalanche {
	result := &avalanche{explorers.NewEtherscanV2(43114)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *avalanche) GetName() string {
	return "avalanche"
}

func (self *avalanche) GetChainID() int64 {
	return 43114
}

func (self *avalanche) GetAlternativeNames() []string {
	return []string{"avax"}
}

func (self *avalanche) GetNativeTokenSymbol() string {
	return "AVAX"
}

func (self *avalanche) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *avalanche) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (self *avalanche) GetNodeVariableName() string {
	return "AVALANCHE_NODE"
}

func (self *avalanche) GetDefaultNodes() map[string]string {
	return map[string]string{
		"avalanche-official": "https://api.avax.network/ext/bc/C/rpc",
	}
}

func (self *avalanche) GetMulticallContract() string {
	return Multicall3Contract
}
