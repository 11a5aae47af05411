package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by Load.
const EnvPrefix = "TICKETGUARD"

// Global holds the global configuration state for ticketguard.
// Only diagnostic output is configurable; hook policy is fixed.
var Global struct {
	Plain bool // Disable colors and symbols
	Debug bool // Enable debug logging
}

// IsPlain returns true if plain output mode is enabled
func IsPlain() bool {
	return Global.Plain
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return Global.Debug
}

// Load populates Global from TICKETGUARD_* environment variables and, when
// flags is non-nil, from the --plain and --debug flags. Flags win over the
// environment; either can only switch a setting on.
func Load(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("plain", "")
	v.SetDefault("debug", "")

	if flags != nil {
		for _, key := range []string{"plain", "debug"} {
			if f := flags.Lookup(key); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}
	}

	if isTruthy(v.GetString("plain")) {
		Global.Plain = true
	}
	if isTruthy(v.GetString("debug")) {
		Global.Debug = true
	}

	return nil
}

// Reset restores the zero configuration.
func Reset() {
	Global.Plain = false
	Global.Debug = false
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
