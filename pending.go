package multicall

import (
	mccommon "github.com/tranvictor/multicall/common"
)

// Waiter blocks until the transaction with the given hash leaves the
// pending state. *monitor.TxMonitor implements it.
type Waiter interface {
	BlockingWait(txHash string) mccommon.TxInfo
}

// PendingTx is the handle returned by SendAggregate3Value. The batch has
// not been mined at that point so there is nothing to decode yet.
type PendingTx struct {
	Hash   string
	waiter Waiter
}

func NewPendingTx(hash string, w Waiter) *PendingTx {
	return &PendingTx{Hash: hash, waiter: w}
}

// Wait blocks until the transaction is mined (or deemed lost) and reports
// where it ended up.
func (p *PendingTx) Wait() mccommon.TxInfo {
	return p.waiter.BlockingWait(p.Hash)
}
