package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var TomoMainnet Network = NewTomoMainnet()

type tomoMainnet struct {
	*explorers.EtherscanLikeExplorer
}

func NewTomoMainnet() *tomoMainnet {
	result := &tomoMainnet{explorers.NewEtherscanV2(88)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *tomoMainnet) GetName() string {
	return "tomo"
}

func (self *tomoMainnet) GetChainID() int64 {
	return 88
}

func (self *tomoMainnet) GetAlternativeNames() []string {
	return []string{"tomochain"}
}

func (self *tomoMainnet) GetNativeTokenSymbol() string {
	return "TOMO"
}

func (self *tomoMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *tomoMainnet) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (self *tomoMainnet) GetNodeVariableName() string {
	return "TOMO_MAINNET_NODE"
}

func (self *tomoMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"tomo-official": "https://rpc.tomochain.com",
	}
}

func (self *tomoMainnet) GetMulticallContract() string {
	return ""
}
