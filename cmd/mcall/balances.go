package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	multicall "github.com/tranvictor/multicall"
	mccommon "github.com/tranvictor/multicall/common"
)

var balancesCmd = &cobra.Command{
	Use:   "balances address [address...]",
	Short: "Read native balances of many addresses in one round trip",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, network, err := newClient()
		if err != nil {
			return err
		}

		mcABI := multicall.GetMulticall3ABI()
		calls := []multicall.Call{}
		for _, addr := range args {
			calls = append(calls, multicall.NewTryCall(
				client.ContractAddress(),
				mcABI,
				"getEthBalance",
				mccommon.HexToAddress(addr),
			))
		}

		stop := startSpinner(fmt.Sprintf("reading %d balances on %s...", len(calls), network.GetName()))
		results, err := client.Aggregate3(calls...)
		stop()
		if err != nil {
			return err
		}

		decimal := uint64(network.GetNativeTokenDecimal())
		for i, result := range results {
			if !result.Success {
				fmt.Printf("%s: %s\n", args[i], mccommon.AlertColor(fmt.Sprintf("%v", result.Value)))
				continue
			}
			balance := result.Value.(*big.Int)
			fmt.Printf("%s: %s %s\n",
				args[i],
				mccommon.BigToFloatString(balance, decimal),
				network.GetNativeTokenSymbol(),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balancesCmd)
}
