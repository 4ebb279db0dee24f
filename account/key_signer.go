package account

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

type KeySigner struct {
	key *ecdsa.PrivateKey
}

func (ks *KeySigner) Address() common.Address {
	return crypto.PubkeyToAddress(ks.key.PublicKey)
}

func (ks *KeySigner) SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(ks.key, chainId)
	if err != nil {
		return nil, err
	}
	return opts.Signer(ks.Address(), tx)
}

func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{key}
}

func NewKeySignerFromHex(hexkey string) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(hexkey)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse private key: %w", err)
	}
	return &KeySigner{key}, nil
}
