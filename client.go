package multicall

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/multicall/networks"
)

var (
	// ErrNoAddressFound means neither an explicit aggregator address nor a
	// known deployment for the requested chain was available.
	ErrNoAddressFound = errors.New("no multicall contract address found")
	// ErrNoSigner means a state-changing operation was requested on a
	// client constructed without a transaction sender.
	ErrNoSigner = errors.New("no transaction sender configured")
)

// Provider is the part of the RPC transport the client needs: simulating
// one call with attached native value against current chain state.
// *reader.EthReader implements it.
type Provider interface {
	CallRawContract(to string, value *big.Int, data []byte) ([]byte, error)
}

// TxSender submits a signed transaction carrying the given call data and
// returns a pending handle. *txsender.Sender implements it.
type TxSender interface {
	SendTx(to string, value *big.Int, data []byte, overrides *TxOverrides) (*PendingTx, error)
}

// TxOverrides are caller-supplied knobs for SendAggregate3Value. Zero
// fields keep the sender's own defaults.
type TxOverrides struct {
	Value           *big.Int
	Nonce           *big.Int
	GasLimit        uint64
	MaxGasPriceGwei float64
	MaxTipGwei      float64
}

// Client batches independent contract calls into single round trips
// through a deployed Multicall3 aggregator contract. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	provider Provider
	sender   TxSender
	contract string
	mcABI    *abi.ABI
}

// NewClient resolves the aggregator contract address from the network's
// registry entry.
func NewClient(provider Provider, network networks.Network) (*Client, error) {
	contract := network.GetMulticallContract()
	if contract == "" {
		return nil, fmt.Errorf("network %s: %w", network.GetName(), ErrNoAddressFound)
	}
	return NewClientWithAddress(provider, contract), nil
}

// NewClientByChainID is NewClient with a chain id lookup instead of a
// network handle.
func NewClientByChainID(provider Provider, chainID int64) (*Client, error) {
	network, err := networks.GetNetworkByID(chainID)
	if err != nil {
		return nil, fmt.Errorf("chain id %d: %w", chainID, ErrNoAddressFound)
	}
	return NewClient(provider, network)
}

func NewClientWithAddress(provider Provider, contract string) *Client {
	return &Client{
		provider: provider,
		contract: contract,
		mcABI:    GetMulticall3ABI(),
	}
}

// WithSender returns a copy of the client that can submit state-changing
// batches through s.
func (c *Client) WithSender(s TxSender) *Client {
	result := *c
	result.sender = s
	return &result
}

func (c *Client) ContractAddress() string {
	return c.contract
}

// read packs one aggregator method invocation, runs it as a single
// eth_call and unpacks the response into result.
func (c *Client) read(result interface{}, method string, value *big.Int, args ...interface{}) error {
	data, err := c.mcABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("packing %s failed: %w", method, err)
	}
	response, err := c.provider.CallRawContract(c.contract, value, data)
	if err != nil {
		return fmt.Errorf("calling %s failed: %w", method, err)
	}
	err = c.mcABI.UnpackIntoInterface(result, method, response)
	if err != nil {
		return fmt.Errorf("unpacking %s response failed: %w", method, err)
	}
	return nil
}

// Aggregate runs the whole batch strictly: any reverting call makes the
// aggregator contract itself revert, which surfaces as a transport error
// that DecodeRevertFromError can render. Return data is left raw, callers
// decode each entry themselves.
func (c *Client) Aggregate(calls ...Call) (*AggregateResult, error) {
	payload := make([]mc3Call, 0, len(calls))
	for _, call := range calls {
		data, err := call.packCallData()
		if err != nil {
			return nil, err
		}
		payload = append(payload, mc3Call{call.Target, data})
	}

	result := struct {
		BlockNumber *big.Int
		ReturnData  [][]byte
	}{}
	if err := c.read(&result, "aggregate", nil, payload); err != nil {
		return nil, err
	}
	return &AggregateResult{result.BlockNumber, result.ReturnData}, nil
}

// TryAggregate tolerates per-call failures unless requireSuccess is set, in
// which case any failing call reverts the whole batch and the transport
// error carries the revert bytes (see DecodeRevertFromError).
func (c *Client) TryAggregate(requireSuccess bool, calls ...Call) ([]CallResult, error) {
	payload := make([]mc3Call, 0, len(calls))
	for _, call := range calls {
		data, err := call.packCallData()
		if err != nil {
			return nil, err
		}
		payload = append(payload, mc3Call{call.Target, data})
	}

	var raw []mc3Result
	if err := c.read(&raw, "tryAggregate", nil, requireSuccess, payload); err != nil {
		return nil, err
	}
	return c.decodeResults(calls, raw)
}

// TryBlockAndAggregate is TryAggregate plus the number and hash of the
// block the batch was executed against.
func (c *Client) TryBlockAndAggregate(requireSuccess bool, calls ...Call) (*BlockResult, error) {
	payload := make([]mc3Call, 0, len(calls))
	for _, call := range calls {
		data, err := call.packCallData()
		if err != nil {
			return nil, err
		}
		payload = append(payload, mc3Call{call.Target, data})
	}

	result := struct {
		BlockNumber *big.Int
		BlockHash   common.Hash
		ReturnData  []mc3Result
	}{}
	if err := c.read(&result, "tryBlockAndAggregate", nil, requireSuccess, payload); err != nil {
		return nil, err
	}
	decoded, err := c.decodeResults(calls, result.ReturnData)
	if err != nil {
		return nil, err
	}
	return &BlockResult{result.BlockNumber, result.BlockHash, decoded}, nil
}

// BlockAndAggregate is TryBlockAndAggregate in strict mode.
func (c *Client) BlockAndAggregate(calls ...Call) (*BlockResult, error) {
	return c.TryBlockAndAggregate(true, calls...)
}

// Aggregate3 honors each call's own AllowFailure flag.
func (c *Client) Aggregate3(calls ...Call) ([]CallResult, error) {
	payload := make([]mc3Call3, 0, len(calls))
	for _, call := range calls {
		data, err := call.packCallData()
		if err != nil {
			return nil, err
		}
		payload = append(payload, mc3Call3{call.Target, call.AllowFailure, data})
	}

	var raw []mc3Result
	if err := c.read(&raw, "aggregate3", nil, payload); err != nil {
		return nil, err
	}
	return c.decodeResults(calls, raw)
}

// Aggregate3Value additionally forwards native currency to payable calls.
// The amount attached to the single eth_call is the exact sum of the
// per-call Values.
func (c *Client) Aggregate3Value(calls ...Call) ([]CallResult, error) {
	payload, total, err := c.buildValuePayload(calls)
	if err != nil {
		return nil, err
	}

	var raw []mc3Result
	if err := c.read(&raw, "aggregate3Value", total, payload); err != nil {
		return nil, err
	}
	return c.decodeResults(calls, raw)
}

// SendAggregate3Value submits the aggregate3Value batch as a real
// transaction instead of simulating it. The attached value defaults to the
// summed per-call values unless overridden. No decoding happens since the
// transaction has not been mined yet.
func (c *Client) SendAggregate3Value(overrides *TxOverrides, calls ...Call) (*PendingTx, error) {
	if c.sender == nil {
		return nil, ErrNoSigner
	}

	payload, total, err := c.buildValuePayload(calls)
	if err != nil {
		return nil, err
	}
	data, err := c.mcABI.Pack("aggregate3Value", payload)
	if err != nil {
		return nil, fmt.Errorf("packing aggregate3Value failed: %w", err)
	}

	value := total
	if overrides != nil && overrides.Value != nil {
		value = overrides.Value
	}
	return c.sender.SendTx(c.contract, value, data, overrides)
}

func (c *Client) buildValuePayload(calls []Call) ([]mc3Call3Value, *big.Int, error) {
	payload := make([]mc3Call3Value, 0, len(calls))
	total := big.NewInt(0)
	for _, call := range calls {
		data, err := call.packCallData()
		if err != nil {
			return nil, nil, err
		}
		value := call.Value
		if value == nil {
			value = big.NewInt(0)
		}
		total.Add(total, value)
		payload = append(payload, mc3Call3Value{call.Target, call.AllowFailure, value, data})
	}
	return payload, total, nil
}

// decodeResults fans out over the aggregator's response array. Per-call
// decode problems are recovered into in-band failed entries, never
// propagated: the returned slice always matches the input calls in length
// and order.
func (c *Client) decodeResults(calls []Call, raw []mc3Result) ([]CallResult, error) {
	if len(raw) != len(calls) {
		return nil, fmt.Errorf("aggregator returned %d results for %d calls", len(raw), len(calls))
	}
	results := make([]CallResult, len(raw))
	for i := range raw {
		results[i] = decodeOneResult(calls[i], raw[i])
	}
	return results, nil
}

func decodeOneResult(call Call, raw mc3Result) CallResult {
	if !raw.Success {
		return CallResult{false, "Revert: " + DecodeRevert(raw.ReturnData, call.ABI)}
	}

	method, found := call.ABI.Methods[call.Method]
	if !found {
		return CallResult{false, fmt.Sprintf("Data handling error: method %s is not in the abi", call.Method)}
	}
	values, err := method.Outputs.UnpackValues(raw.ReturnData)
	if err != nil {
		return CallResult{false, "Data handling error: " + err.Error()}
	}

	switch len(method.Outputs) {
	case 0:
		return CallResult{true, nil}
	case 1:
		// single output decodes to the bare value, no list wrapping
		return CallResult{true, Normalize(method.Outputs[0].Type, values[0])}
	default:
		result := make([]interface{}, len(values))
		for i := range values {
			result[i] = Normalize(method.Outputs[i].Type, values[i])
		}
		return CallResult{true, result}
	}
}

// Thin getters over the aggregator contract's read methods, each a single
// RPC invocation decoding the only output directly.

func (c *Client) GetBlockNumber() (*big.Int, error) {
	result := big.NewInt(0)
	err := c.read(&result, "getBlockNumber", nil)
	return result, err
}

func (c *Client) GetBlockHash(blockNumber *big.Int) (common.Hash, error) {
	result := common.Hash{}
	err := c.read(&result, "getBlockHash", nil, blockNumber)
	return result, err
}

func (c *Client) GetLastBlockHash() (common.Hash, error) {
	result := common.Hash{}
	err := c.read(&result, "getLastBlockHash", nil)
	return result, err
}

func (c *Client) GetCurrentBlockTimestamp() (*big.Int, error) {
	result := big.NewInt(0)
	err := c.read(&result, "getCurrentBlockTimestamp", nil)
	return result, err
}

func (c *Client) GetCurrentBlockGasLimit() (*big.Int, error) {
	result := big.NewInt(0)
	err := c.read(&result, "getCurrentBlockGasLimit", nil)
	return result, err
}

func (c *Client) GetCurrentBlockCoinbase() (common.Address, error) {
	result := common.Address{}
	err := c.read(&result, "getCurrentBlockCoinbase", nil)
	return result, err
}

func (c *Client) GetCurrentBlockDifficulty() (*big.Int, error) {
	result := big.NewInt(0)
	err := c.read(&result, "getCurrentBlockDifficulty", nil)
	return result, err
}

func (c *Client) GetEthBalance(address string) (*big.Int, error) {
	result := big.NewInt(0)
	err := c.read(&result, "getEthBalance", nil, common.HexToAddress(address))
	return result, err
}

func (c *Client) GetBasefee() (*big.Int, error) {
	result := big.NewInt(0)
	err := c.read(&result, "getBasefee", nil)
	return result, err
}

func (c *Client) GetChainId() (*big.Int, error) {
	result := big.NewInt(0)
	err := c.read(&result, "getChainId", nil)
	return result, err
}
