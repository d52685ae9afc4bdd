// Package config resolves CLI settings from flags, MEDIAPROBE_ environment
// variables, an optional .mediaprobe config file and defaults, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "MEDIAPROBE"
	configName = ".mediaprobe"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Flag names, also used as config file and environment keys.
const (
	KeyOutput   = "output"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyHint     = "hint"
)

type Config struct {
	Output   string
	LogLevel string
	LogFile  string
	ShowHint bool
	// File is the config file that was read, or "" when none was found.
	File string
}

func Default() Config {
	return Config{
		Output:   OutputText,
		LogLevel: "warn",
	}
}

// AddFlags registers the settings on flags with their defaults.
func AddFlags(flags *pflag.FlagSet) {
	def := Default()
	flags.StringP(KeyOutput, "o", def.Output, "output format (text|json)")
	flags.String(KeyLogLevel, def.LogLevel, "log level (trace|debug|info|warn|error)")
	flags.String(KeyLogFile, def.LogFile, "also write logs to this file, rotated")
	flags.Bool(KeyHint, def.ShowHint, "add a content type hint to each report")
}

// Load resolves the configuration. cfgFile names an explicit config file;
// when empty .mediaprobe.{yaml,json,toml} is looked up in the working
// directory and then the home directory.
func Load(flags *pflag.FlagSet, cfgFile string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFile, def.LogFile)
	v.SetDefault(KeyHint, def.ShowHint)

	if cfgFile == "" {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configName)
	} else {
		v.SetConfigFile(cfgFile)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Output:   strings.ToLower(v.GetString(KeyOutput)),
		LogLevel: strings.ToLower(v.GetString(KeyLogLevel)),
		LogFile:  v.GetString(KeyLogFile),
		ShowHint: v.GetBool(KeyHint),
		File:     v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output format not supported: %s", c.Output)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
