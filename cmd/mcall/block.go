package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mccommon "github.com/tranvictor/multicall/common"
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Show current block and chain info read through the aggregator contract",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, network, err := newClient()
		if err != nil {
			return err
		}

		stop := startSpinner(fmt.Sprintf("reading chain state on %s...", network.GetName()))
		number, err := client.GetBlockNumber()
		if err != nil {
			stop()
			return err
		}
		hash, err := client.GetLastBlockHash()
		if err != nil {
			stop()
			return err
		}
		timestamp, err := client.GetCurrentBlockTimestamp()
		if err != nil {
			stop()
			return err
		}
		gasLimit, err := client.GetCurrentBlockGasLimit()
		if err != nil {
			stop()
			return err
		}
		coinbase, err := client.GetCurrentBlockCoinbase()
		if err != nil {
			stop()
			return err
		}
		basefee, err := client.GetBasefee()
		if err != nil {
			stop()
			return err
		}
		chainID, err := client.GetChainId()
		if err != nil {
			stop()
			return err
		}
		stop()

		fmt.Printf("Network:     %s\n", mccommon.InfoColor(network.GetName()))
		fmt.Printf("Chain id:    %s\n", chainID)
		fmt.Printf("Block:       %s\n", number)
		fmt.Printf("Block hash:  %s\n", hash.Hex())
		fmt.Printf("Timestamp:   %s\n", timestamp)
		fmt.Printf("Gas limit:   %s\n", gasLimit)
		fmt.Printf("Coinbase:    %s\n", coinbase.Hex())
		fmt.Printf("Base fee:    %s gwei\n", mccommon.BigToFloatString(basefee, 9))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blockCmd)
}
