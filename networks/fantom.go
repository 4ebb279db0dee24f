package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var Fantom Network = NewFantom()

type fantom struct {
	*explorers.EtherscanLikeExplorer
}

func NewFantom() *fantom {
	result := &fantom{explorers.NewEtherscanV2(250)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *fantom) GetName() string {
	return "fantom"
}

func (self *fantom) GetChainID() int64 {
	return 250
}

func (self *fantom) GetAlternativeNames() []string {
	return []string{"ftm"}
}

func (self *fantom) GetNativeTokenSymbol() string {
	return "FTM"
}

func (self *fantom) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *fantom) GetBlockTime() time.Duration {
	return 1 * time.Second
}

func (self *fantom) GetNodeVariableName() string {
	return "FANTOM_NODE"
}

func (self *fantom) GetDefaultNodes() map[string]string {
	return map[string]string{
		"fantom-official": "https://rpc.ftm.tools",
	}
}

func (self *fantom) GetMulticallContract() string {
	return Multicall3Contract
}
