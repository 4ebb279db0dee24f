package explorers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type EtherscanLikeExplorer struct {
	ChainID uint64

	Domain string
	APIKey string
}

func NewEtherscanLikeExplorer(domain string, apiKey string) *EtherscanLikeExplorer {
	return &EtherscanLikeExplorer{
		Domain: domain,
		APIKey: apiKey,
	}
}

func (ee *EtherscanLikeExplorer) GetABIStringAPIURL(address string) string {
	return fmt.Sprintf(
		"%s/api?chainid=%d&module=contract&action=getabi&address=%s&apikey=%s",
		ee.Domain,
		ee.ChainID,
		address,
		ee.APIKey,
	)
}

type abiresponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

func (ee *EtherscanLikeExplorer) GetABIString(address string) (string, error) {
	url := ee.GetABIStringAPIURL(address)
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	abiresp := abiresponse{}
	err = json.Unmarshal(body, &abiresp)
	if err != nil {
		return "", fmt.Errorf("couldn't unmarshal %s to abi response: %w", string(body), err)
	}
	if abiresp.Status != "1" {
		return "", fmt.Errorf("error from %s: %s", url, abiresp.Message)
	}
	return abiresp.Result, nil
}
