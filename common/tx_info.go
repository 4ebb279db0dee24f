package common

import (
	"github.com/ethereum/go-ethereum/core/types"
)

// TxInfo describes where a broadcasted transaction currently is in its
// lifecycle. Status is one of "pending", "done", "reverted" or "lost".
type TxInfo struct {
	Status  string
	Receipt *types.Receipt
	Block   *types.Header
}
