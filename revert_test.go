package multicall

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const customErrorABI = `[{
	"type": "error",
	"name": "InsufficientBalance",
	"inputs": [
		{"name": "available", "type": "uint256"},
		{"name": "required", "type": "uint256"}
	]
}]`

func encodeErrorString(t *testing.T, reason string) []byte {
	t.Helper()
	stringTy, err := abi.NewType("string", "", nil)
	if err != nil {
		t.Fatalf("new type: %s", err)
	}
	packed, err := abi.Arguments{{Type: stringTy}}.Pack(reason)
	if err != nil {
		t.Fatalf("pack: %s", err)
	}
	return append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...)
}

func encodePanic(t *testing.T, code int64) []byte {
	t.Helper()
	packed, err := uint256Arg.Pack(big.NewInt(code))
	if err != nil {
		t.Fatalf("pack: %s", err)
	}
	return append([]byte{0x4e, 0x48, 0x7b, 0x71}, packed...)
}

func TestDecodeRevertErrorString(t *testing.T) {
	got := DecodeRevert(encodeErrorString(t, "boom"), nil)
	if got != "boom" {
		t.Errorf("want boom, got %q", got)
	}
}

func TestDecodeRevertPanic(t *testing.T) {
	got := DecodeRevert(encodePanic(t, 1), nil)
	if got != "Panic(1)" {
		t.Errorf("want Panic(1), got %q", got)
	}

	got = DecodeRevert(encodePanic(t, 17), nil)
	if got != "Panic(17)" {
		t.Errorf("want Panic(17), got %q", got)
	}
}

func TestDecodeRevertCustomError(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(customErrorABI))
	if err != nil {
		t.Fatalf("parse ABI: %s", err)
	}
	abiErr := parsed.Errors["InsufficientBalance"]

	packed, err := abiErr.Inputs.Pack(big.NewInt(10), big.NewInt(25))
	if err != nil {
		t.Fatalf("pack: %s", err)
	}
	data := append(abiErr.ID.Bytes()[:4], packed...)

	got := DecodeRevert(data, &parsed)
	if got != "InsufficientBalance(10, 25)" {
		t.Errorf("want InsufficientBalance(10, 25), got %q", got)
	}
}

func TestDecodeRevertUnrecognized(t *testing.T) {
	got := DecodeRevert([]byte{0xde, 0xad, 0xbe, 0xef}, nil)
	if !strings.HasPrefix(got, "(unrecognized revert:") {
		t.Errorf("want (unrecognized revert: prefix, got %q", got)
	}
	if !strings.Contains(got, "0xdeadbeef") {
		t.Errorf("want hex snippet in %q", got)
	}
}

func TestDecodeRevertNoData(t *testing.T) {
	if got := DecodeRevert(nil, nil); got != "(no revert data)" {
		t.Errorf("want (no revert data), got %q", got)
	}
	if got := DecodeRevert([]byte{}, nil); got != "(no revert data)" {
		t.Errorf("want (no revert data), got %q", got)
	}
}

// nodeError mimics the error go-ethereum's rpc package returns for a
// reverted eth_call: the message plus the revert bytes as hex
type nodeError struct {
	msg  string
	data interface{}
}

func (e *nodeError) Error() string          { return e.msg }
func (e *nodeError) ErrorData() interface{} { return e.data }

func TestDecodeRevertFromError(t *testing.T) {
	err := &nodeError{
		msg:  "execution reverted",
		data: hexutil.Encode(encodeErrorString(t, "boom")),
	}
	// attached revert bytes win over the node's own message
	if got := DecodeRevertFromError(err, nil); got != "boom" {
		t.Errorf("want boom, got %q", got)
	}

	wrapped := errors.Join(errors.New("node-1"), err)
	if got := DecodeRevertFromError(wrapped, nil); got != "boom" {
		t.Errorf("wrapped: want boom, got %q", got)
	}
}

func TestDecodeRevertFromErrorWithoutUsableData(t *testing.T) {
	cases := []error{
		&nodeError{msg: "execution reverted", data: nil},
		&nodeError{msg: "execution reverted", data: "not-hex"},
		&nodeError{msg: "execution reverted", data: map[string]string{}},
		errors.New("execution reverted"),
	}
	for _, err := range cases {
		if got := DecodeRevertFromError(err, nil); got != "execution reverted" {
			t.Errorf("%#v: want the error message, got %q", err, got)
		}
	}

	if got := DecodeRevertFromError(nil, nil); got != "(no revert data)" {
		t.Errorf("nil error: want (no revert data), got %q", got)
	}
}

// a selector that matches a known custom error but with undecodable
// payload falls through to the hex snippet
func TestDecodeRevertCustomErrorMalformed(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(customErrorABI))
	if err != nil {
		t.Fatalf("parse ABI: %s", err)
	}
	abiErr := parsed.Errors["InsufficientBalance"]
	data := append(abiErr.ID.Bytes()[:4], 0x01)

	got := DecodeRevert(data, &parsed)
	if !strings.HasPrefix(got, "(unrecognized revert:") {
		t.Errorf("want (unrecognized revert: prefix, got %q", got)
	}
}
