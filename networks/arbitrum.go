package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var ArbitrumMainnet Network = NewArbitrumMainnet()

type arbitrumMainnet struct {
	*explorers.EtherscanLikeExplorer
}

func NewArbitrumMainnet() *arbitrumMainnet {
	result := &arbitrumMainnet{explorers.NewEtherscanV2(42161)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *arbitrumMainnet) GetName() string {
	return "arbitrum"
}

func (self *arbitrumMainnet) GetChainID() int64 {
	return 42161
}

func (self *arbitrumMainnet) GetAlternativeNames() []string {
	return []string{"arb"}
}

func (self *arbitrumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *arbitrumMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *arbitrumMainnet) GetBlockTime() time.Duration {
	return 1 * time.Second
}

func (self *arbitrumMainnet) GetNodeVariableName() string {
	return "ARBITRUM_MAINNET_NODE"
}

func (self *arbitrumMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"arbitrum-official": "https://arb1.arbitrum.io/rpc",
	}
}

func (self *arbitrumMainnet) GetMulticallContract() string {
	return Multicall3Contract
}
