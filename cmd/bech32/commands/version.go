package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unionlabs/bech32/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the bech32 tool",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
