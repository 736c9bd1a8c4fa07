package main

import (
	"os"

	"github.com/unionlabs/bech32/cmd/bech32/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
