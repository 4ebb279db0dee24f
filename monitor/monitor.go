package monitor

import (
	"time"

	mccommon "github.com/tranvictor/multicall/common"
	"github.com/tranvictor/multicall/reader"
)

// TxMonitor polls the chain until a broadcasted tx is mined. A tx that
// stays invisible for more than 3 minutes is reported as lost.
type TxMonitor struct {
	reader *reader.EthReader
}

func NewTxMonitor(r *reader.EthReader) *TxMonitor {
	return &TxMonitor{r}
}

func (tm TxMonitor) periodicCheck(tx string, info chan mccommon.TxInfo) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	startTime := time.Now()
	for {
		t := <-ticker.C
		receipt, err := tm.reader.TransactionReceipt(tx)
		if err != nil || receipt == nil {
			if t.Sub(startTime) > 3*time.Minute {
				info <- mccommon.TxInfo{Status: "lost"}
				return
			}
			continue
		}

		block, _ := tm.reader.HeaderByNumber(receipt.BlockNumber.Int64())
		if receipt.Status == 1 {
			info <- mccommon.TxInfo{Status: "done", Receipt: receipt, Block: block}
		} else {
			info <- mccommon.TxInfo{Status: "reverted", Receipt: receipt, Block: block}
		}
		return
	}
}

func (tm TxMonitor) MakeWaitChannel(tx string) <-chan mccommon.TxInfo {
	result := make(chan mccommon.TxInfo)
	go tm.periodicCheck(tx, result)
	return result
}

func (tm TxMonitor) BlockingWait(tx string) mccommon.TxInfo {
	wChannel := tm.MakeWaitChannel(tx)
	return <-wChannel
}
