package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags to the config keys they override
var flagKeys = map[string]string{
	"log-level":   "logLevel",
	"seed":        "seed",
	"disable-sfx": "disableSFX",
}

// RegisterFlags adds the config override flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	fs.Bool("disable-sfx", false, "turn off sound effects")
}

// BindFlags lets flags set on the command line override the config file
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}
	return nil
}
