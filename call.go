package multicall

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	mccommon "github.com/tranvictor/multicall/common"
)

// Call describes one invocation inside an aggregate batch. The ABI, Method
// and Args are kept around after encoding because the returned bytes have to
// be decoded against the original method's output signature.
type Call struct {
	Target       common.Address
	ABI          *abi.ABI
	Method       string
	Args         []interface{}
	AllowFailure bool
	Value        *big.Int
}

func NewCall(target string, ab *abi.ABI, method string, args ...interface{}) Call {
	return Call{
		Target: mccommon.HexToAddress(target),
		ABI:    ab,
		Method: method,
		Args:   args,
	}
}

// NewTryCall is NewCall with the per-call failure tolerance flag set, for
// the aggregate3 family of batches.
func NewTryCall(target string, ab *abi.ABI, method string, args ...interface{}) Call {
	result := NewCall(target, ab, method, args...)
	result.AllowFailure = true
	return result
}

// NewValueCall attaches a native currency amount to a tolerant call, for
// aggregate3Value batches. A nil value means zero.
func NewValueCall(target string, value *big.Int, ab *abi.ABI, method string, args ...interface{}) Call {
	result := NewTryCall(target, ab, method, args...)
	result.Value = value
	return result
}

func (c Call) packCallData() ([]byte, error) {
	data, err := c.ABI.Pack(c.Method, c.Args...)
	if err != nil {
		return nil, fmt.Errorf("packing %s on %s failed: %w", c.Method, c.Target.Hex(), err)
	}
	return data, nil
}

// payload tuples matching the aggregator contract's input structs

type mc3Call struct {
	Target   common.Address
	CallData []byte
}

type mc3Call3 struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

type mc3Call3Value struct {
	Target       common.Address
	AllowFailure bool
	Value        *big.Int
	CallData     []byte
}

type mc3Result struct {
	Success    bool
	ReturnData []byte
}
