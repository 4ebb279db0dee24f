package multicall

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// CallResult is the decoded outcome of one call in a tolerant batch. On
// success Value holds the normalized decoded output: the bare value for a
// single-output method, []interface{} for a multi-output one. On failure
// Value holds a human readable reason string, either
// "Revert: ..." for an on-chain revert or "Data handling error: ..." when
// the returned bytes couldn't be decoded against the method's signature.
type CallResult struct {
	Success bool
	Value   interface{}
}

// AggregateResult is the undecoded outcome of Aggregate: callers decode
// each ReturnData entry themselves.
type AggregateResult struct {
	BlockNumber *big.Int
	ReturnData  [][]byte
}

// BlockResult carries per-call results together with the block the batch
// was executed against.
type BlockResult struct {
	BlockNumber *big.Int
	BlockHash   common.Hash
	Results     []CallResult
}
