package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var Optimism Network = NewOptimism()

type optimism struct {
	*explorers.EtherscanLikeExplorer
}

func NewOptimism() *optimism {
	result := &optimism{explorers.NewEtherscanV2(10)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *optimism) GetName() string {
	return "optimism"
}

func (self *optimism) GetChainID() int64 {
	return 10
}

func (self *optimism) GetAlternativeNames() []string {
	return []string{"op"}
}

func (self *optimism) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *optimism) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *optimism) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (self *optimism) GetNodeVariableName() string {
	return "OPTIMISM_NODE"
}

func (self *optimism) GetDefaultNodes() map[string]string {
	return map[string]string{
		"optimism-official": "https://mainnet.optimism.io",
	}
}

func (self *optimism) GetMulticallContract() string {
	return Multicall3Contract
}
