package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	multicall "github.com/tranvictor/multicall"
	"github.com/tranvictor/multicall/networks"
	"github.com/tranvictor/multicall/reader"
)

var networkFlag string

var rootCmd = &cobra.Command{
	Use:   "mcall",
	Short: "Batch many contract reads into one RPC round trip",
	Long: `mcall packages independent contract calls into a single invocation of the
Multicall3 aggregator contract, so reading tens of values costs one RPC
round trip instead of tens.

Pick a chain with --network (mainnet, bsc, polygon, arbitrum, optimism,
base, avalanche, fantom, sepolia...). Node urls default to public RPCs and
can be overridden per network with its node env var, e.g.
ETHEREUM_MAINNET_NODE=https://my.node for mainnet.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&networkFlag, "network", "n", "mainnet", "name of the chain to talk to")
}

func selectedNetwork() (networks.Network, error) {
	return networks.GetNetwork(networkFlag)
}

func newClient() (*multicall.Client, networks.Network, error) {
	network, err := selectedNetwork()
	if err != nil {
		return nil, nil, err
	}
	client, err := multicall.NewClient(reader.NewEthReader(network), network)
	if err != nil {
		return nil, nil, err
	}
	return client, network, nil
}

// startSpinner shows an animated wait indicator and returns its stop
// function. On non-terminal outputs it only prints the message once.
func startSpinner(msg string) func() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond)
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
	}
}
