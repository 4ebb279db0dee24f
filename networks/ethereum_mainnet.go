package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var EthereumMainnet Network = NewEthereumMainnet()

type ethereumMainnet struct {
	*explorers.EtherscanLikeExplorer
}

func NewEthereumMainnet() *ethereumMainnet {
	result := &ethereumMainnet{explorers.NewEtherscanV2(1)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *ethereumMainnet) GetName() string {
	return "mainnet"
}

func (self *ethereumMainnet) GetChainID() int64 {
	return 1
}

func (self *ethereumMainnet) GetAlternativeNames() []string {
	return []string{"ethereum"}
}

func (self *ethereumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *ethereumMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *ethereumMainnet) GetBlockTime() time.Duration {
	return 12 * time.Second
}

func (self *ethereumMainnet) GetNodeVariableName() string {
	return "ETHEREUM_MAINNET_NODE"
}

func (self *ethereumMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-llama": "https://eth.llamarpc.com",
		"mainnet-ankr":  "https://rpc.ankr.com/eth",
	}
}

func (self *ethereumMainnet) GetMulticallContract() string {
	return Multicall3Contract
}
