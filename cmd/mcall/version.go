package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const VERSION string = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show mcall version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s\n", VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
