package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	multicall "github.com/tranvictor/multicall"
	mccommon "github.com/tranvictor/multicall/common"
)

var abiFileFlag string

var readCmd = &cobra.Command{
	Use:   "read contract method [args...]",
	Short: "Read one contract method through the aggregator contract",
	Long: `Reads a contract method and prints the decoded result. The contract's ABI
is fetched from the network's block explorer unless --abi points to a local
ABI json file. Arguments are converted according to the method's input
types.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, network, err := newClient()
		if err != nil {
			return err
		}

		contract := args[0]
		method := args[1]

		contractABI, err := resolveABI(network.GetABIString, contract)
		if err != nil {
			return err
		}
		m, found := contractABI.Methods[method]
		if !found {
			return fmt.Errorf("method %s is not in the abi of %s", method, contract)
		}
		if len(m.Inputs) != len(args)-2 {
			return fmt.Errorf("%s takes %d args, got %d", method, len(m.Inputs), len(args)-2)
		}

		callArgs := []interface{}{}
		for i, input := range m.Inputs {
			value, err := convertArg(input.Type, args[i+2])
			if err != nil {
				return fmt.Errorf("arg %d (%s): %w", i, input.Name, err)
			}
			callArgs = append(callArgs, value)
		}

		stop := startSpinner(fmt.Sprintf("reading %s on %s...", method, network.GetName()))
		results, err := client.TryAggregate(false, multicall.NewCall(contract, contractABI, method, callArgs...))
		stop()
		if err != nil {
			return err
		}

		result := results[0]
		if !result.Success {
			fmt.Println(mccommon.AlertColor(fmt.Sprintf("%v", result.Value)))
			return nil
		}
		fmt.Printf("%v\n", result.Value)
		return nil
	},
}

func resolveABI(lookup func(address string) (string, error), contract string) (*abi.ABI, error) {
	var abiStr string
	if abiFileFlag != "" {
		content, err := os.ReadFile(abiFileFlag)
		if err != nil {
			return nil, fmt.Errorf("couldn't read abi file: %w", err)
		}
		abiStr = string(content)
	} else {
		fetched, err := lookup(contract)
		if err != nil {
			return nil, fmt.Errorf("couldn't get abi from the block explorer: %w", err)
		}
		abiStr = fetched
	}
	result, err := abi.JSON(strings.NewReader(abiStr))
	if err != nil {
		return nil, fmt.Errorf("couldn't parse abi: %w", err)
	}
	return &result, nil
}

// convertArg turns a command line string into the go value abi.Pack expects
// for the input type. Composite types are not supported on the CLI.
func convertArg(t abi.Type, s string) (interface{}, error) {
	switch t.T {
	case abi.AddressTy:
		return mccommon.HexToAddress(s), nil
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.BytesTy:
		return hexutil.Decode(s)
	case abi.UintTy:
		switch t.Size {
		case 8:
			v, err := strconv.ParseUint(s, 10, 8)
			return uint8(v), err
		case 16:
			v, err := strconv.ParseUint(s, 10, 16)
			return uint16(v), err
		case 32:
			v, err := strconv.ParseUint(s, 10, 32)
			return uint32(v), err
		case 64:
			return strconv.ParseUint(s, 10, 64)
		default:
			return mccommon.StringToBigInt(s)
		}
	case abi.IntTy:
		switch t.Size {
		case 8:
			v, err := strconv.ParseInt(s, 10, 8)
			return int8(v), err
		case 16:
			v, err := strconv.ParseInt(s, 10, 16)
			return int16(v), err
		case 32:
			v, err := strconv.ParseInt(s, 10, 32)
			return int32(v), err
		case 64:
			return strconv.ParseInt(s, 10, 64)
		default:
			return mccommon.StringToBigInt(s)
		}
	default:
		return nil, fmt.Errorf("unsupported input type %s", t.String())
	}
}

func init() {
	readCmd.Flags().StringVar(&abiFileFlag, "abi", "", "path to a local ABI json file")
	rootCmd.AddCommand(readCmd)
}
