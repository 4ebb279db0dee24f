package reader

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"

	mccommon "github.com/tranvictor/multicall/common"
	"github.com/tranvictor/multicall/networks"
)

var DEFAULT_ADDRESS string = "0x0000000000000000000000000000000000000000"

// EthReader asks all of its nodes in parallel and takes the first
// successful answer. It only returns an error when every node failed.
type EthReader struct {
	nodes map[string]EthereumNode
}

func NewEthReaderGeneric(nodes map[string]string) *EthReader {
	ns := map[string]EthereumNode{}
	for name, c := range nodes {
		ns[name] = NewOneNodeReader(name, c)
	}
	return &EthReader{
		nodes: ns,
	}
}

// NewEthReader builds a reader for a network using its default node list,
// overridable with a comma separated url list in the network's node env var.
func NewEthReader(network networks.Network) *EthReader {
	nodes := network.GetDefaultNodes()
	if custom := strings.Trim(os.Getenv(network.GetNodeVariableName()), " "); custom != "" {
		nodes = map[string]string{}
		for i, url := range strings.Split(custom, ",") {
			nodes[fmt.Sprintf("custom-%d", i)] = strings.Trim(url, " ")
		}
	}
	return NewEthReaderGeneric(nodes)
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

type callRawContractResponse struct {
	Data  []byte
	Error error
}

// CallRawContract simulates a call with attached value against the latest
// chain state and returns the raw returned bytes.
func (er *EthReader) CallRawContract(to string, value *big.Int, data []byte) ([]byte, error) {
	return er.CallRawContractFrom(DEFAULT_ADDRESS, to, value, data)
}

func (er *EthReader) CallRawContractFrom(from, to string, value *big.Int, data []byte) ([]byte, error) {
	resCh := make(chan callRawContractResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			data, err := n.CallRawContract(from, to, value, data)
			resCh <- callRawContractResponse{
				Data:  data,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Data, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

func (er *EthReader) CallRawContractWithOverrides(from, to string, value *big.Int, data []byte, overrides *map[common.Address]gethclient.OverrideAccount) ([]byte, error) {
	resCh := make(chan callRawContractResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			data, err := n.CallRawContractWithOverrides(from, to, value, data, overrides)
			resCh <- callRawContractResponse{
				Data:  data,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Data, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

type estimateGasResult struct {
	Gas   uint64
	Error error
}

func (er *EthReader) EstimateExactGas(
	from, to string,
	priceGwei float64,
	value *big.Int,
	data []byte,
) (uint64, error) {
	resCh := make(chan estimateGasResult, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			gas, err := n.EstimateGas(from, to, priceGwei, value, data)
			resCh <- estimateGasResult{
				Gas:   gas,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Gas, result.Error
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

type getBalanceResponse struct {
	Balance *big.Int
	Error   error
}

func (er *EthReader) GetBalance(address string) (balance *big.Int, err error) {
	resCh := make(chan getBalanceResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			balance, err := n.GetBalance(address)
			resCh <- getBalanceResponse{
				Balance: balance,
				Error:   wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Balance, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

type getNonceResponse struct {
	Nonce uint64
	Error error
}

func (er *EthReader) GetMinedNonce(address string) (nonce uint64, err error) {
	resCh := make(chan getNonceResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			nonce, err := n.GetMinedNonce(address)
			resCh <- getNonceResponse{
				Nonce: nonce,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Nonce, result.Error
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

func (er *EthReader) GetPendingNonce(address string) (nonce uint64, err error) {
	resCh := make(chan getNonceResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			nonce, err := n.GetPendingNonce(address)
			resCh <- getNonceResponse{
				Nonce: nonce,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Nonce, result.Error
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

type transactionReceiptResponse struct {
	Receipt *types.Receipt
	Error   error
}

func (er *EthReader) TransactionReceipt(txHash string) (receipt *types.Receipt, err error) {
	resCh := make(chan transactionReceiptResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			receipt, err := n.TransactionReceipt(txHash)
			resCh <- transactionReceiptResponse{
				Receipt: receipt,
				Error:   wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Receipt, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

type headerByNumberResponse struct {
	Header *types.Header
	Error  error
}

func (er *EthReader) HeaderByNumber(number int64) (*types.Header, error) {
	resCh := make(chan headerByNumberResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			header, err := n.HeaderByNumber(number)
			resCh <- headerByNumberResponse{
				Header: header,
				Error:  wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Header, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

type getBlockResponse struct {
	Block uint64
	Error error
}

func (er *EthReader) CurrentBlock() (uint64, error) {
	resCh := make(chan getBlockResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			block, err := n.CurrentBlock()
			resCh <- getBlockResponse{
				Block: block,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Block, result.Error
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

func (er *EthReader) SuggestedGasSettings() (maxGasPriceGwei, maxTipGwei float64, err error) {
	isDynamicFeeAvailable, err := er.CheckDynamicFeeTxAvailable()
	if err != nil {
		return 0, 0, err
	}

	maxGasPriceGwei, err = er.RecommendedGasPrice()
	if err != nil {
		return 0, 0, err
	}

	if isDynamicFeeAvailable {
		maxTipGwei, err = er.GetSuggestedGasTipCap()
		if err != nil {
			return 0, 0, err
		}
	}

	return maxGasPriceGwei, maxTipGwei, nil
}

// CheckDynamicFeeTxAvailable detects if the connected chain supports dynamic
// fee txs by checking if the latest block carries baseFee > 0. That may not
// always work but is enough for now.
func (er *EthReader) CheckDynamicFeeTxAvailable() (bool, error) {
	header, err := er.HeaderByNumber(-1)
	if err != nil {
		return false, err
	}

	return header.BaseFee != nil && header.BaseFee.Cmp(common.Big0) > 0, nil
}

type getSuggestedGasResponse struct {
	Gas   *big.Int
	Error error
}

// add 20% tip to miners compared to what returned from the node to improve UX
// a bit more
func (er *EthReader) GetSuggestedGasTipCap() (float64, error) {
	resCh := make(chan getSuggestedGasResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			gasTip, err := n.SuggestedGasTipCap()
			resCh <- getSuggestedGasResponse{
				Gas:   gasTip,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}

	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return mccommon.BigToFloat(result.Gas, 9) * 1.2, result.Error
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

// add 50% to max gas price because the next blocks based price can be increased
// according to ethereum protocol
func (er *EthReader) RecommendedGasPrice() (float64, error) {
	resCh := make(chan getSuggestedGasResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			gasPrice, err := n.SuggestedGasPrice()
			resCh <- getSuggestedGasResponse{
				Gas:   gasPrice,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}

	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return mccommon.BigToFloat(result.Gas, 9) * 1.5, result.Error
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}
