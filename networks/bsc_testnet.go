package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var BSCTestnet Network = NewBSCTestnet()

type bscTestnet struct {
	*explorers.EtherscanLikeExplorer
}

func NewBSCTestnet() *bscTestnet {
	result := &bscTestnet{explorers.NewEtherscanV2(97)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *bscTestnet) GetName() string {
	return "bsc-test"
}

func (self *bscTestnet) GetChainID() int64 {
	return 97
}

func (self *bscTestnet) GetAlternativeNames() []string {
	return []string{"bsc-testnet"}
}

func (self *bscTestnet) GetNativeTokenSymbol() string {
	return "BNB"
}

func (self *bscTestnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *bscTestnet) GetBlockTime() time.Duration {
	return 3 * time.Second
}

func (self *bscTestnet) GetNodeVariableName() string {
	return "BSC_TESTNET_NODE"
}

func (self *bscTestnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"bsc-testnet-binance": "https://data-seed-prebsc-1-s1.binance.org:8545",
	}
}

func (self *bscTestnet) GetMulticallContract() string {
	return Multicall3Contract
}
