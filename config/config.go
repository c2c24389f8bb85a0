// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Settings is the root-level settings struct and is a mix of settings
// available from the command line and GEANNO_* environment variables
type Settings struct {
	// the number of annotation workers to run at once
	Threads int `mapstructure:"threads"`

	// whether to log debug details to stderr
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Settings struct populated by Viper settings: flags
// bound in /cmd and/or environment variables
func New() Settings {
	var s Settings

	if err := viper.Unmarshal(&s); err != nil {
		log.Fatal().Err(err).Msg("failed to decode settings")
	}

	if s.Threads < 1 {
		s.Threads = runtime.NumCPU()
	}

	return s
}
