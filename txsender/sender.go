package txsender

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	multicall "github.com/tranvictor/multicall"
	"github.com/tranvictor/multicall/broadcaster"
	mccommon "github.com/tranvictor/multicall/common"
	"github.com/tranvictor/multicall/monitor"
	"github.com/tranvictor/multicall/networks"
	"github.com/tranvictor/multicall/reader"
)

// Signer signs a prepared transaction for a specific chain.
// *account.KeySigner implements it.
type Signer interface {
	Address() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// Sender assembles a transaction around caller-provided call data, fills
// nonce and gas from the chain, signs it and broadcasts it. It implements
// multicall.TxSender.
type Sender struct {
	reader      *reader.EthReader
	broadcaster *broadcaster.Broadcaster
	monitor     *monitor.TxMonitor
	signer      Signer
	chainID     int64
}

func NewSender(chainID int64, nodes map[string]string, signer Signer) *Sender {
	r := reader.NewEthReaderGeneric(nodes)
	return &Sender{
		reader:      r,
		broadcaster: broadcaster.NewBroadcaster(nodes),
		monitor:     monitor.NewTxMonitor(r),
		signer:      signer,
		chainID:     chainID,
	}
}

func NewSenderForNetwork(network networks.Network, signer Signer) *Sender {
	return NewSender(network.GetChainID(), network.GetDefaultNodes(), signer)
}

func (s *Sender) SendTx(to string, value *big.Int, data []byte, overrides *multicall.TxOverrides) (*multicall.PendingTx, error) {
	from := s.signer.Address().Hex()

	var nonce uint64
	if overrides != nil && overrides.Nonce != nil {
		nonce = overrides.Nonce.Uint64()
	} else {
		pendingNonce, err := s.reader.GetPendingNonce(from)
		if err != nil {
			return nil, fmt.Errorf("getting pending nonce failed: %w", err)
		}
		nonce = pendingNonce
	}

	maxGasPriceGwei, maxTipGwei, err := s.reader.SuggestedGasSettings()
	if err != nil {
		return nil, fmt.Errorf("getting gas settings failed: %w", err)
	}
	if overrides != nil && overrides.MaxGasPriceGwei > 0 {
		maxGasPriceGwei = overrides.MaxGasPriceGwei
	}
	if overrides != nil && overrides.MaxTipGwei > 0 {
		maxTipGwei = overrides.MaxTipGwei
	}

	var gasLimit uint64
	if overrides != nil && overrides.GasLimit > 0 {
		gasLimit = overrides.GasLimit
	} else {
		estimated, err := s.reader.EstimateExactGas(from, to, maxGasPriceGwei, value, data)
		if err != nil {
			return nil, fmt.Errorf("estimating gas failed: %w", err)
		}
		// headroom over the estimation since batched state changes can
		// shift gas usage between simulation and inclusion
		gasLimit = estimated * 120 / 100
	}

	tx := buildTx(nonce, to, value, gasLimit, maxGasPriceGwei, maxTipGwei, data, s.chainID)
	signedTx, err := s.signer.SignTx(tx, big.NewInt(s.chainID))
	if err != nil {
		return nil, fmt.Errorf("signing tx failed: %w", err)
	}

	hash, broadcasted, err := s.broadcaster.BroadcastTx(signedTx)
	if !broadcasted {
		return nil, fmt.Errorf("broadcasting tx failed: %w", err)
	}
	return multicall.NewPendingTx(hash, s.monitor), nil
}

func buildTx(nonce uint64, to string, value *big.Int, gasLimit uint64, priceGwei, tipGwei float64, data []byte, chainID int64) *types.Transaction {
	toAddress := mccommon.HexToAddress(to)
	gasPrice := mccommon.GweiToWei(priceGwei)
	if tipGwei > 0 {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   big.NewInt(chainID),
			Nonce:     nonce,
			GasTipCap: mccommon.GweiToWei(tipGwei),
			GasFeeCap: gasPrice,
			Gas:       gasLimit,
			To:        &toAddress,
			Value:     value,
			Data:      data,
		})
	}
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &toAddress,
		Value:    value,
		Data:     data,
	})
}
