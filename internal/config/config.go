package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/constants"
	"github.com/spf13/viper"
)

type Config struct {
	Account    AccountConfig `mapstructure:"account"`
	Display    DisplayConfig `mapstructure:"display"`
	Log        LogConfig     `mapstructure:"log"`
	Metrics    MetricsConfig `mapstructure:"metrics"`
	ConfigPath string        `mapstructure:"-"`
}

type AccountConfig struct {
	Source   string `mapstructure:"source"`
	File     string `mapstructure:"file"`
	Database string `mapstructure:"database"`
	ID       string `mapstructure:"id"`
}

type DisplayConfig struct {
	MinorUnits int32 `mapstructure:"minor_units"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

func NewDefault() *Config {
	return &Config{
		Account: AccountConfig{
			Source:   constants.SourceJSON,
			File:     constants.DefaultAccountFile,
			Database: constants.DefaultDatabase,
		},
		Display: DisplayConfig{MinorUnits: 0},
		Log:     LogConfig{Level: constants.DefaultLogLevel},
	}
}

// Load resolves the configuration from defaults, an optional config file,
// ACCTBAL_* environment variables and any flags already bound to v.
// Without cfgFile, acctbal.yaml is looked up in the working directory and
// may be absent.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	def := NewDefault()
	v.SetDefault("account.source", def.Account.Source)
	v.SetDefault("account.file", def.Account.File)
	v.SetDefault("account.database", def.Account.Database)
	v.SetDefault("account.id", def.Account.ID)
	v.SetDefault("display.minor_units", def.Display.MinorUnits)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("metrics.textfile", def.Metrics.Textfile)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(constants.AppName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}
