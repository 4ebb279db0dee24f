package networks

import (
	"os"
	"strings"
	"time"

	"github.com/tranvictor/multicall/explorers"
)

var Matic Network = NewMatic()

type matic struct {
	*explorers.EtherscanLikeExplorer
}

func NewMatic() *matic {
	result := &matic{explorers.NewEtherscanV2(137)}
	apiKey := strings.Trim(os.Getenv("ETHERSCAN_API_KEY"), " ")
	if apiKey != "" {
		result.EtherscanLikeExplorer.APIKey = apiKey
	}
	return result
}

func (self *matic) GetName() string {
	return "polygon"
}

func (self *matic) GetChainID() int64 {
	return 137
}

func (self *matic) GetAlternativeNames() []string {
	return []string{"matic"}
}

func (self *matic) GetNativeTokenSymbol() string {
	return "POL"
}

func (self *matic) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *matic) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (self *matic) GetNodeVariableName() string {
	return "MATIC_NODE"
}

func (self *matic) GetDefaultNodes() map[string]string {
	return map[string]string{
		"polygon-rpc": "https://polygon-rpc.com",
	}
}

func (self *matic) GetMulticallContract() string {
	return Multicall3Contract
}
