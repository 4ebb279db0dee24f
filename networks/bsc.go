package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var BSCMainnet Network = NewBSCMainnet()

type bscMainnet struct {
	*explorers.EtherscanLikeExplorer
}

func NewBSCMainnet() *bscMainnet {
	result := &bscMainnet{explorers.NewEtherscanV2(56)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *bscMainnet) GetName() string {
	return "bsc"
}

func (self *bscMainnet) GetChainID() int64 {
	return 56
}

func (self *bscMainnet) GetAlternativeNames() []string {
	return []string{"binance"}
}

func (self *bscMainnet) GetNativeTokenSymbol() string {
	return "BNB"
}

func (self *bscMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *bscMainnet) GetBlockTime() time.Duration {
	return 3 * time.Second
}

func (self *bscMainnet) GetNodeVariableName() string {
	return "BSC_MAINNET_NODE"
}

func (self *bscMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"bsc-binance": "https://bsc-dataseed.binance.org",
		"bsc-defibit": "https://bsc-dataseed1.defibit.io",
	}
}

func (self *bscMainnet) GetMulticallContract() string {
	return Multicall3Contract
}
