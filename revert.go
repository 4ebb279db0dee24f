package multicall

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// 4 byte selectors of the two revert encodings solidity itself emits
var (
	errorSelector = []byte{0x08, 0xc3, 0x79, 0xa0} // Error(string)
	panicSelector = []byte{0x4e, 0x48, 0x7b, 0x71} // Panic(uint256)
)

var uint256Arg = abi.Arguments{{Type: mustNewType("uint256")}}

func mustNewType(t string) abi.Type {
	result, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return result
}

// DecodeRevert renders raw revert bytes as a human readable reason. It
// tries, in order: the standard Error(string) encoding, the solidity panic
// encoding, custom errors declared in contractABI, and finally a hex
// snippet of the unrecognized payload. contractABI may be nil.
func DecodeRevert(data []byte, contractABI *abi.ABI) string {
	if len(data) == 0 {
		return "(no revert data)"
	}

	if len(data) >= 4 && bytes.Equal(data[:4], errorSelector) {
		if reason, err := abi.UnpackRevert(data); err == nil {
			return reason
		}
	}

	if len(data) >= 4 && bytes.Equal(data[:4], panicSelector) {
		if values, err := uint256Arg.Unpack(data[4:]); err == nil && len(values) == 1 {
			return fmt.Sprintf("Panic(%v)", values[0])
		}
	}

	if reason, ok := decodeCustomError(data, contractABI); ok {
		return reason
	}

	snippet := data
	if len(snippet) > 21 {
		snippet = snippet[:21]
	}
	return fmt.Sprintf("(unrecognized revert: %s…)", hexutil.Encode(snippet))
}

func decodeCustomError(data []byte, contractABI *abi.ABI) (string, bool) {
	if contractABI == nil || len(data) < 4 {
		return "", false
	}
	for _, abiErr := range contractABI.Errors {
		if !bytes.Equal(abiErr.ID.Bytes()[:4], data[:4]) {
			continue
		}
		values, err := abiErr.Unpack(data)
		if err != nil {
			continue
		}
		args := []string{}
		if list, ok := values.([]interface{}); ok {
			for _, v := range list {
				args = append(args, fmt.Sprintf("%v", v))
			}
		}
		return fmt.Sprintf("%s(%s)", abiErr.Name, strings.Join(args, ", ")), true
	}
	return "", false
}

// DecodeRevertFromError is the error-path entry: when the node rejected a
// simulated call it usually attaches the revert bytes to the RPC error.
// Without usable bytes the node's own message is the best we have.
func DecodeRevertFromError(err error, contractABI *abi.ABI) string {
	if err == nil {
		return "(no revert data)"
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data := revertBytesFromErrorData(dataErr.ErrorData()); data != nil {
			return DecodeRevert(data, contractABI)
		}
	}
	return err.Error()
}

func revertBytesFromErrorData(errorData interface{}) []byte {
	hexStr, ok := errorData.(string)
	if !ok {
		return nil
	}
	data, err := hexutil.Decode(hexStr)
	if err != nil {
		return nil
	}
	return data
}
