// Package cmd is for command line interactions with the geanno application
package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "geanno",
	Short: `Annotate genomic regions against collections of reference intervals.
Each collection adds a column with the labels and distances of nearby references`,
	Version: "0.4.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("geanno failed")
	}
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("geanno")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
