package commands

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/unionlabs/bech32/config"
)

const logModule = "cmd"

var config = cfg.DefaultConfig()

// RootCmd is the root command of the bech32 tool.
var RootCmd = &cobra.Command{
	Use:   "bech32",
	Short: "Bech32 encoding and decoding.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(config); err != nil {
			return err
		}
		setLogLevel(config.LogLevel)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("log_level", config.LogLevel, "Select log level(debug, info, warn, error or fatal)")
	RootCmd.PersistentFlags().String("hrp", config.HRP, "Human-readable part used by encode")
	RootCmd.PersistentFlags().String("variant", config.Variant, "Checksum variant, only bech32 is supported")
	viper.BindPFlags(RootCmd.PersistentFlags())
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
