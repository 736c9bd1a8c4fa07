package commands

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/unionlabs/bech32"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <bech32-string>",
	Short: "Decode a checksummed bech32 string into hrp and payload bytes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hrp, payload, err := bech32.DecodeBytes(args[0])
		if err != nil {
			log.WithFields(log.Fields{"module": logModule, "err": err}).Fatal("decode failed")
		}

		fmt.Println("hrp:", hrp)
		fmt.Println("payload:", hex.EncodeToString(payload))
	},
}

func init() {
	RootCmd.AddCommand(decodeCmd)
}
