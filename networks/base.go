package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var Base Network = NewBase()

type base struct {
	*explorers.EtherscanLikeExplorer
}

func NewBase() *base {
	result := &base{explorers.NewEtherscanV2(8453)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *base) GetName() string {
	return "base"
}

func (self *base) GetChainID() int64 {
	return 8453
}

func (self *base) GetAlternativeNames() []string {
	return []string{}
}

func (self *base) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *base) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *base) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (self *base) GetNodeVariableName() string {
	return "BASE_NODE"
}

func (self *base) GetDefaultNodes() map[string]string {
	return map[string]string{
		"base-official": "https://mainnet.base.org",
	}
}

func (self *base) GetMulticallContract() string {
	return Multicall3Contract
}
