package reader

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
)

// EthereumNode is a single RPC endpoint. All of its operations are one
// round trip with an internal timeout, no retries.
type EthereumNode interface {
	NodeName() string
	NodeURL() string

	CallRawContract(from, to string, value *big.Int, data []byte) ([]byte, error)
	CallRawContractWithOverrides(from, to string, value *big.Int, data []byte, overrides *map[ethcommon.Address]gethclient.OverrideAccount) ([]byte, error)
	EstimateGas(from, to string, priceGwei float64, value *big.Int, data []byte) (uint64, error)
	GetBalance(address string) (*big.Int, error)
	GetMinedNonce(address string) (uint64, error)
	GetPendingNonce(address string) (uint64, error)
	TransactionReceipt(txHash string) (*types.Receipt, error)
	HeaderByNumber(number int64) (*types.Header, error)
	SuggestedGasPrice() (*big.Int, error)
	SuggestedGasTipCap() (*big.Int, error)
	CurrentBlock() (uint64, error)
}
