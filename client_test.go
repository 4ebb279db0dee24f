package multicall

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/multicall/networks"
)

const erc20TestABI = `[
	{"type": "function", "name": "symbol", "inputs": [],
	 "outputs": [{"name": "", "type": "string"}], "stateMutability": "view"},
	{"type": "function", "name": "balanceOf",
	 "inputs": [{"name": "owner", "type": "address"}],
	 "outputs": [{"name": "", "type": "uint256"}], "stateMutability": "view"},
	{"type": "function", "name": "getReserves", "inputs": [],
	 "outputs": [
		{"name": "reserve0", "type": "uint112"},
		{"name": "reserve1", "type": "uint112"},
		{"name": "blockTimestampLast", "type": "uint32"}
	 ], "stateMutability": "view"}
]`

const (
	tokenAddr  = "0x1111111111111111111111111111111111111111"
	holderAddr = "0x2222222222222222222222222222222222222222"
)

type fakeProvider struct {
	response []byte
	err      error

	lastTo    string
	lastValue *big.Int
	lastData  []byte
}

func (f *fakeProvider) CallRawContract(to string, value *big.Int, data []byte) ([]byte, error) {
	f.lastTo = to
	f.lastValue = value
	f.lastData = data
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func erc20ABI(t *testing.T) *abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(erc20TestABI))
	if err != nil {
		t.Fatalf("parse ABI: %s", err)
	}
	return &parsed
}

func mustPackOutputs(t *testing.T, contractABI *abi.ABI, method string, values ...interface{}) []byte {
	t.Helper()
	packed, err := contractABI.Methods[method].Outputs.Pack(values...)
	if err != nil {
		t.Fatalf("pack %s outputs: %s", method, err)
	}
	return packed
}

func packAggregatorResponse(t *testing.T, method string, values ...interface{}) []byte {
	t.Helper()
	mcABI := GetMulticall3ABI()
	packed, err := mcABI.Methods[method].Outputs.Pack(values...)
	if err != nil {
		t.Fatalf("pack %s response: %s", method, err)
	}
	return packed
}

func newTestClient(fake *fakeProvider) *Client {
	return NewClientWithAddress(fake, networks.Multicall3Contract)
}

func TestTryAggregateOrderAndFailureMix(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "tryAggregate", []mc3Result{
			{Success: false, ReturnData: encodeErrorString(t, "boom")},
			{Success: true, ReturnData: mustPackOutputs(t, ab, "symbol", "KNC")},
		}),
	}
	client := newTestClient(fake)

	calls := []Call{
		NewCall(tokenAddr, ab, "balanceOf", ethcommon.HexToAddress(holderAddr)),
		NewCall(tokenAddr, ab, "symbol"),
	}
	results, err := client.TryAggregate(false, calls...)
	if err != nil {
		t.Fatalf("TryAggregate: %s", err)
	}
	if len(results) != len(calls) {
		t.Fatalf("expected %d results, got %d", len(calls), len(results))
	}

	if results[0].Success {
		t.Errorf("results[0]: expected failure")
	}
	if got := results[0].Value.(string); got != "Revert: boom" {
		t.Errorf("results[0]: want Revert: boom, got %q", got)
	}
	if !results[1].Success {
		t.Errorf("results[1]: expected success")
	}
	if got := results[1].Value.(string); got != "KNC" {
		t.Errorf("results[1]: want KNC, got %q", got)
	}

	// the single round trip carried the tryAggregate payload in call order
	data0, err := ab.Pack("balanceOf", ethcommon.HexToAddress(holderAddr))
	if err != nil {
		t.Fatalf("pack balanceOf: %s", err)
	}
	data1, err := ab.Pack("symbol")
	if err != nil {
		t.Fatalf("pack symbol: %s", err)
	}
	expected, err := GetMulticall3ABI().Pack("tryAggregate", false, []mc3Call{
		{ethcommon.HexToAddress(tokenAddr), data0},
		{ethcommon.HexToAddress(tokenAddr), data1},
	})
	if err != nil {
		t.Fatalf("pack expected payload: %s", err)
	}
	if !bytes.Equal(fake.lastData, expected) {
		t.Errorf("unexpected payload sent to the aggregator")
	}
	if fake.lastTo != networks.Multicall3Contract {
		t.Errorf("expected call to the aggregator contract, got %s", fake.lastTo)
	}
	if fake.lastValue != nil {
		t.Errorf("expected no attached value, got %s", fake.lastValue)
	}
}

func TestTryAggregateStrictModePropagatesBatchRevert(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{err: errors.New("execution reverted: Multicall3: call failed")}
	client := newTestClient(fake)

	_, err := client.TryAggregate(true, NewCall(tokenAddr, ab, "symbol"))
	if err == nil {
		t.Fatalf("expected the batch revert to propagate")
	}

	// requireSuccess must have been forwarded into the payload
	data, err2 := ab.Pack("symbol")
	if err2 != nil {
		t.Fatalf("pack symbol: %s", err2)
	}
	expected, err2 := GetMulticall3ABI().Pack("tryAggregate", true, []mc3Call{
		{ethcommon.HexToAddress(tokenAddr), data},
	})
	if err2 != nil {
		t.Fatalf("pack expected payload: %s", err2)
	}
	if !bytes.Equal(fake.lastData, expected) {
		t.Errorf("requireSuccess was not forwarded")
	}
}

func TestAggregateSkipsDecoding(t *testing.T) {
	ab := erc20ABI(t)
	rawReturn := mustPackOutputs(t, ab, "symbol", "KNC")
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "aggregate", big.NewInt(18000000), [][]byte{rawReturn}),
	}
	client := newTestClient(fake)

	result, err := client.Aggregate(NewCall(tokenAddr, ab, "symbol"))
	if err != nil {
		t.Fatalf("Aggregate: %s", err)
	}
	if result.BlockNumber.Cmp(big.NewInt(18000000)) != 0 {
		t.Errorf("block number: want 18000000, got %s", result.BlockNumber)
	}
	if len(result.ReturnData) != 1 {
		t.Fatalf("expected 1 raw entry, got %d", len(result.ReturnData))
	}
	if !bytes.Equal(result.ReturnData[0], rawReturn) {
		t.Errorf("raw return bytes were modified")
	}
}

func TestTryBlockAndAggregate(t *testing.T) {
	ab := erc20ABI(t)
	blockHash := ethcommon.HexToHash("0xabcdef0000000000000000000000000000000000000000000000000000000000")
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "tryBlockAndAggregate",
			big.NewInt(123456),
			[32]byte(blockHash),
			[]mc3Result{
				{Success: true, ReturnData: mustPackOutputs(t, ab, "balanceOf", big.NewInt(999))},
			}),
	}
	client := newTestClient(fake)

	result, err := client.TryBlockAndAggregate(false, NewCall(tokenAddr, ab, "balanceOf", ethcommon.HexToAddress(holderAddr)))
	if err != nil {
		t.Fatalf("TryBlockAndAggregate: %s", err)
	}
	if result.BlockNumber.Cmp(big.NewInt(123456)) != 0 {
		t.Errorf("block number: want 123456, got %s", result.BlockNumber)
	}
	if result.BlockHash != blockHash {
		t.Errorf("block hash: want %s, got %s", blockHash.Hex(), result.BlockHash.Hex())
	}
	if len(result.Results) != 1 || !result.Results[0].Success {
		t.Fatalf("unexpected results: %+v", result.Results)
	}
	if got := result.Results[0].Value.(*big.Int); got.Cmp(big.NewInt(999)) != 0 {
		t.Errorf("balance: want 999, got %s", got)
	}
}

func TestAggregate3ForwardsAllowFailure(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "aggregate3", []mc3Result{
			{Success: true, ReturnData: mustPackOutputs(t, ab, "symbol", "KNC")},
			{Success: false, ReturnData: nil},
		}),
	}
	client := newTestClient(fake)

	results, err := client.Aggregate3(
		NewCall(tokenAddr, ab, "symbol"),
		NewTryCall(tokenAddr, ab, "symbol"),
	)
	if err != nil {
		t.Fatalf("Aggregate3: %s", err)
	}
	if got := results[1].Value.(string); got != "Revert: (no revert data)" {
		t.Errorf("results[1]: want Revert: (no revert data), got %q", got)
	}

	data, err2 := ab.Pack("symbol")
	if err2 != nil {
		t.Fatalf("pack symbol: %s", err2)
	}
	expected, err2 := GetMulticall3ABI().Pack("aggregate3", []mc3Call3{
		{ethcommon.HexToAddress(tokenAddr), false, data},
		{ethcommon.HexToAddress(tokenAddr), true, data},
	})
	if err2 != nil {
		t.Fatalf("pack expected payload: %s", err2)
	}
	if !bytes.Equal(fake.lastData, expected) {
		t.Errorf("allowFailure flags were not forwarded per call")
	}
}

func TestAggregate3ValueSumsAttachedValue(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "aggregate3Value", []mc3Result{
			{Success: true, ReturnData: mustPackOutputs(t, ab, "symbol", "A")},
			{Success: true, ReturnData: mustPackOutputs(t, ab, "symbol", "B")},
		}),
	}
	client := newTestClient(fake)

	_, err := client.Aggregate3Value(
		NewValueCall(tokenAddr, big.NewInt(10), ab, "symbol"),
		NewValueCall(tokenAddr, big.NewInt(15), ab, "symbol"),
	)
	if err != nil {
		t.Fatalf("Aggregate3Value: %s", err)
	}
	if fake.lastValue == nil || fake.lastValue.Cmp(big.NewInt(25)) != 0 {
		t.Errorf("attached value: want 25, got %s", fake.lastValue)
	}
}

func TestAggregate3ValueNilValueMeansZero(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "aggregate3Value", []mc3Result{
			{Success: true, ReturnData: mustPackOutputs(t, ab, "symbol", "A")},
		}),
	}
	client := newTestClient(fake)

	_, err := client.Aggregate3Value(NewTryCall(tokenAddr, ab, "symbol"))
	if err != nil {
		t.Fatalf("Aggregate3Value: %s", err)
	}
	if fake.lastValue == nil || fake.lastValue.Sign() != 0 {
		t.Errorf("attached value: want 0, got %s", fake.lastValue)
	}
}

func TestDecodeDataHandlingError(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "tryAggregate", []mc3Result{
			{Success: true, ReturnData: []byte{0x01, 0x02, 0x03}},
		}),
	}
	client := newTestClient(fake)

	results, err := client.TryAggregate(false, NewCall(tokenAddr, ab, "symbol"))
	if err != nil {
		t.Fatalf("TryAggregate: %s", err)
	}
	if results[0].Success {
		t.Errorf("expected in-band failure for malformed return bytes")
	}
	got := results[0].Value.(string)
	if !strings.HasPrefix(got, "Data handling error: ") {
		t.Errorf("want Data handling error: prefix, got %q", got)
	}
}

func TestSingleOutputDecodesToBareValue(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "tryAggregate", []mc3Result{
			{Success: true, ReturnData: mustPackOutputs(t, ab, "balanceOf", big.NewInt(123))},
		}),
	}
	client := newTestClient(fake)

	results, err := client.TryAggregate(false, NewCall(tokenAddr, ab, "balanceOf", ethcommon.HexToAddress(holderAddr)))
	if err != nil {
		t.Fatalf("TryAggregate: %s", err)
	}
	got, ok := results[0].Value.(*big.Int)
	if !ok {
		t.Fatalf("expected bare *big.Int, got %T", results[0].Value)
	}
	if got.Cmp(big.NewInt(123)) != 0 {
		t.Errorf("want 123, got %s", got)
	}
}

func TestMultiOutputDecodesToOrderedList(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "tryAggregate", []mc3Result{
			{Success: true, ReturnData: mustPackOutputs(t, ab, "getReserves",
				big.NewInt(1000), big.NewInt(2000), uint32(1700000000))},
		}),
	}
	client := newTestClient(fake)

	results, err := client.TryAggregate(false, NewCall(tokenAddr, ab, "getReserves"))
	if err != nil {
		t.Fatalf("TryAggregate: %s", err)
	}
	list, ok := results[0].Value.([]interface{})
	if !ok {
		t.Fatalf("expected []interface{}, got %T", results[0].Value)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 outputs, got %d", len(list))
	}
	if got := list[0].(*big.Int); got.Cmp(big.NewInt(1000)) != 0 {
		t.Errorf("reserve0: want 1000, got %s", got)
	}
	if got := list[2].(uint32); got != 1700000000 {
		t.Errorf("blockTimestampLast: want 1700000000, got %d", got)
	}
}

func TestResultCountMismatchIsAnError(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "tryAggregate", []mc3Result{
			{Success: true, ReturnData: mustPackOutputs(t, ab, "symbol", "KNC")},
		}),
	}
	client := newTestClient(fake)

	_, err := client.TryAggregate(false,
		NewCall(tokenAddr, ab, "symbol"),
		NewCall(tokenAddr, ab, "symbol"),
	)
	if err == nil {
		t.Fatalf("expected an error on result count mismatch")
	}
}

func TestNewClientNoAddressFound(t *testing.T) {
	_, err := NewClient(&fakeProvider{}, networks.TomoMainnet)
	if !errors.Is(err, ErrNoAddressFound) {
		t.Errorf("want ErrNoAddressFound, got %v", err)
	}
}

func TestGetters(t *testing.T) {
	fake := &fakeProvider{
		response: packAggregatorResponse(t, "getBlockNumber", big.NewInt(18000000)),
	}
	client := newTestClient(fake)

	number, err := client.GetBlockNumber()
	if err != nil {
		t.Fatalf("GetBlockNumber: %s", err)
	}
	if number.Cmp(big.NewInt(18000000)) != 0 {
		t.Errorf("want 18000000, got %s", number)
	}

	fake.response = packAggregatorResponse(t, "getEthBalance", big.NewInt(777))
	balance, err := client.GetEthBalance(holderAddr)
	if err != nil {
		t.Fatalf("GetEthBalance: %s", err)
	}
	if balance.Cmp(big.NewInt(777)) != 0 {
		t.Errorf("want 777, got %s", balance)
	}
	expected, err2 := GetMulticall3ABI().Pack("getEthBalance", ethcommon.HexToAddress(holderAddr))
	if err2 != nil {
		t.Fatalf("pack getEthBalance: %s", err2)
	}
	if !bytes.Equal(fake.lastData, expected) {
		t.Errorf("unexpected getEthBalance payload")
	}

	fake.response = packAggregatorResponse(t, "getCurrentBlockCoinbase", ethcommon.HexToAddress(holderAddr))
	coinbase, err := client.GetCurrentBlockCoinbase()
	if err != nil {
		t.Fatalf("GetCurrentBlockCoinbase: %s", err)
	}
	if coinbase != ethcommon.HexToAddress(holderAddr) {
		t.Errorf("want %s, got %s", holderAddr, coinbase.Hex())
	}
}

type fakeSender struct {
	lastTo        string
	lastValue     *big.Int
	lastData      []byte
	lastOverrides *TxOverrides
	pending       *PendingTx
}

func (f *fakeSender) SendTx(to string, value *big.Int, data []byte, overrides *TxOverrides) (*PendingTx, error) {
	f.lastTo = to
	f.lastValue = value
	f.lastData = data
	f.lastOverrides = overrides
	return f.pending, nil
}

func TestSendAggregate3ValueRequiresSender(t *testing.T) {
	ab := erc20ABI(t)
	client := newTestClient(&fakeProvider{})

	_, err := client.SendAggregate3Value(nil, NewValueCall(tokenAddr, big.NewInt(1), ab, "symbol"))
	if !errors.Is(err, ErrNoSigner) {
		t.Errorf("want ErrNoSigner, got %v", err)
	}
}

func TestSendAggregate3Value(t *testing.T) {
	ab := erc20ABI(t)
	sender := &fakeSender{pending: NewPendingTx("0xdeadbeef", nil)}
	client := newTestClient(&fakeProvider{}).WithSender(sender)

	pending, err := client.SendAggregate3Value(nil,
		NewValueCall(tokenAddr, big.NewInt(10), ab, "symbol"),
		NewValueCall(tokenAddr, big.NewInt(15), ab, "symbol"),
	)
	if err != nil {
		t.Fatalf("SendAggregate3Value: %s", err)
	}
	if pending != sender.pending {
		t.Errorf("the pending handle was not returned unmodified")
	}
	if sender.lastValue.Cmp(big.NewInt(25)) != 0 {
		t.Errorf("default value: want 25, got %s", sender.lastValue)
	}
	if sender.lastTo != networks.Multicall3Contract {
		t.Errorf("to: want the aggregator contract, got %s", sender.lastTo)
	}

	data, err2 := ab.Pack("symbol")
	if err2 != nil {
		t.Fatalf("pack symbol: %s", err2)
	}
	expected, err2 := GetMulticall3ABI().Pack("aggregate3Value", []mc3Call3Value{
		{ethcommon.HexToAddress(tokenAddr), true, big.NewInt(10), data},
		{ethcommon.HexToAddress(tokenAddr), true, big.NewInt(15), data},
	})
	if err2 != nil {
		t.Fatalf("pack expected payload: %s", err2)
	}
	if !bytes.Equal(sender.lastData, expected) {
		t.Errorf("unexpected aggregate3Value payload")
	}
}

func TestSendAggregate3ValueOverridesValue(t *testing.T) {
	ab := erc20ABI(t)
	sender := &fakeSender{pending: NewPendingTx("0xdeadbeef", nil)}
	client := newTestClient(&fakeProvider{}).WithSender(sender)

	override := &TxOverrides{Value: big.NewInt(100)}
	_, err := client.SendAggregate3Value(override,
		NewValueCall(tokenAddr, big.NewInt(10), ab, "symbol"),
	)
	if err != nil {
		t.Fatalf("SendAggregate3Value: %s", err)
	}
	if sender.lastValue.Cmp(big.NewInt(100)) != 0 {
		t.Errorf("overridden value: want 100, got %s", sender.lastValue)
	}
}

func TestPackFailureSurfacesBeforeTheRoundTrip(t *testing.T) {
	ab := erc20ABI(t)
	fake := &fakeProvider{}
	client := newTestClient(fake)

	// balanceOf takes an address, passing none makes packing fail locally
	_, err := client.TryAggregate(false, NewCall(tokenAddr, ab, "balanceOf"))
	if err == nil {
		t.Fatalf("expected a packing error")
	}
	if fake.lastData != nil {
		t.Errorf("no RPC invocation should have happened, got %s", fmt.Sprintf("%x", fake.lastData))
	}
}
