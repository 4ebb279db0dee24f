package multicall

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

func GetMulticall3ABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(multicall3abi))
	return &result
}
