package commands

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/unionlabs/bech32"
)

var encodeLower bool

var encodeCmd = &cobra.Command{
	Use:   "encode <hex-payload>",
	Short: "Encode payload bytes into a checksummed bech32 string",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		payload, err := hex.DecodeString(args[0])
		if err != nil {
			log.WithFields(log.Fields{"module": logModule, "err": err}).Fatal("invalid hex payload")
		}

		encode := bech32.EncodeBytes
		if encodeLower {
			encode = bech32.EncodeBytesLower
		}
		encoded, err := encode(config.HRP, payload, config.Variant)
		if err != nil {
			log.WithFields(log.Fields{"module": logModule, "err": err}).Fatal("encode failed")
		}

		fmt.Println(encoded)
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeLower, "lower", false, "Canonicalize the hrp to lowercase before encoding")
	RootCmd.AddCommand(encodeCmd)
}
