// Package config loads the demo settings from flags, environment variables
// and an optional TOML file.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is the class of configuration failures.
var Error = errs.Class("config")

const (
	envPrefix  = "OUTCOME"
	configName = "outcome-demo"
	configType = "toml"

	DefaultAddr = ":8080"
)

type Config struct {
	Addr    string `mapstructure:"addr"`
	Serve   bool   `mapstructure:"serve"`
	Debug   bool   `mapstructure:"debug"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load resolves the configuration from args, OUTCOME_* environment variables
// and an optional TOML file, in that order of precedence.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("users", pflag.ContinueOnError)
	flags.String("addr", DefaultAddr, "Address the HTTP server listens on")
	flags.Bool("serve", false, "Serve the user API after running the scenarios")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")
	configFile := flags.String("config", "", "Path to a TOML configuration file")

	if err := flags.Parse(args); err != nil {
		return nil, Error.Wrap(err)
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, Error.New("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, Error.New("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, Error.New("failed to unmarshal config: %w", err)
	}

	if cfg.Addr == "" {
		return nil, Error.New("addr must not be empty")
	}

	return cfg, nil
}
