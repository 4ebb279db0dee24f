package reader

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/ethereum/go-ethereum/rpc"

	mccommon "github.com/tranvictor/multicall/common"
)

const TIMEOUT time.Duration = 4 * time.Second

type OneNodeReader struct {
	nodeName   string
	nodeURL    string
	client     *rpc.Client
	ethClient  *ethclient.Client
	gethClient *gethclient.Client
	mu         sync.Mutex
}

func NewOneNodeReader(name, url string) *OneNodeReader {
	return &OneNodeReader{
		nodeName: name,
		nodeURL:  url,
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) initConnection() error {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	client, err := rpc.Dial(onr.NodeURL())
	if err != nil {
		return fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	onr.client = client
	onr.ethClient = ethclient.NewClient(onr.client)
	onr.gethClient = gethclient.New(onr.client)
	return nil
}

func (onr *OneNodeReader) Client() (*rpc.Client, error) {
	if onr.client != nil {
		return onr.client, nil
	}
	err := onr.initConnection()
	return onr.client, err
}

func (onr *OneNodeReader) EthClient() (*ethclient.Client, error) {
	if onr.ethClient != nil {
		return onr.ethClient, nil
	}
	err := onr.initConnection()
	return onr.ethClient, err
}

func (onr *OneNodeReader) GEthClient() (*gethclient.Client, error) {
	if onr.gethClient != nil {
		return onr.gethClient, nil
	}
	err := onr.initConnection()
	return onr.gethClient, err
}

// CallRawContract simulates a call against the latest state. value is the
// native currency amount attached to the simulated call, nil meaning zero.
func (onr *OneNodeReader) CallRawContract(from, to string, value *big.Int, data []byte) ([]byte, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}

	contract := mccommon.HexToAddress(to)
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()

	return ethcli.CallContract(timeout, ethereum.CallMsg{
		From:  mccommon.HexToAddress(from),
		To:    &contract,
		Value: value,
		Data:  data,
	}, nil)
}

func (onr *OneNodeReader) CallRawContractWithOverrides(from, to string, value *big.Int, data []byte, overrides *map[common.Address]gethclient.OverrideAccount) ([]byte, error) {
	gethcli, err := onr.GEthClient()
	if err != nil {
		return nil, err
	}

	contract := mccommon.HexToAddress(to)
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()

	return gethcli.CallContract(timeout, ethereum.CallMsg{
		From:  mccommon.HexToAddress(from),
		To:    &contract,
		Value: value,
		Data:  data,
	}, nil, overrides)
}

func (onr *OneNodeReader) EstimateGas(from, to string, priceGwei float64, value *big.Int, data []byte) (uint64, error) {
	fromAddr := common.HexToAddress(from)
	var toAddrPtr *common.Address
	if to != "" {
		toAddr := common.HexToAddress(to)
		toAddrPtr = &toAddr
	}
	price := mccommon.GweiToWei(priceGwei)
	ethcli, err := onr.EthClient()
	if err != nil {
		return 0, err
	}
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	return ethcli.EstimateGas(timeout, ethereum.CallMsg{
		From:     fromAddr,
		To:       toAddrPtr,
		GasPrice: price,
		Value:    value,
		Data:     data,
	})
}

func (onr *OneNodeReader) GetBalance(address string) (balance *big.Int, err error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	acc := common.HexToAddress(address)
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	return ethcli.BalanceAt(timeout, acc, nil)
}

func (onr *OneNodeReader) GetMinedNonce(address string) (nonce uint64, err error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return 0, err
	}
	acc := common.HexToAddress(address)
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	return ethcli.NonceAt(timeout, acc, nil)
}

func (onr *OneNodeReader) GetPendingNonce(address string) (nonce uint64, err error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return 0, err
	}
	acc := common.HexToAddress(address)
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	return ethcli.PendingNonceAt(timeout, acc)
}

func (onr *OneNodeReader) TransactionReceipt(txHash string) (receipt *types.Receipt, err error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	hash := common.HexToHash(txHash)
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	return ethcli.TransactionReceipt(timeout, hash)
}

func (onr *OneNodeReader) HeaderByNumber(number int64) (*types.Header, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	var numberBig *big.Int
	if number > -1 {
		numberBig = big.NewInt(number)
	}
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	return ethcli.HeaderByNumber(timeout, numberBig)
}

func (onr *OneNodeReader) SuggestedGasPrice() (*big.Int, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}

	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()

	return ethcli.SuggestGasPrice(timeout)
}

func (onr *OneNodeReader) SuggestedGasTipCap() (*big.Int, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}

	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()

	return ethcli.SuggestGasTipCap(timeout)
}

func (onr *OneNodeReader) CurrentBlock() (uint64, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return 0, err
	}
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	header, err := ethcli.HeaderByNumber(timeout, nil)
	if err != nil {
		return 0, err
	}
	return header.Number.Uint64(), nil
}
