package explorers

// BlockExplorer can look up contract metadata that is not available from
// chain state itself, such as verified ABIs.
type BlockExplorer interface {
	GetABIString(address string) (string, error)
}

const defaultEtherscanAPIKey = "UBB257TI824FC7HUSPT66KZUMGBPRN3IWV"

// NewEtherscanV2 returns an explorer using the unified etherscan v2 API
// which serves every chain etherscan supports behind one domain, selected
// by chain id.
func NewEtherscanV2(chainID uint64) *EtherscanLikeExplorer {
	result := NewEtherscanLikeExplorer("https://api.etherscan.io/v2", defaultEtherscanAPIKey)
	result.ChainID = chainID
	return result
}
