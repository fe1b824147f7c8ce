package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the merged view of flags, environment and config file.
type Config struct {
	LogLevel     string        `mapstructure:"log-level"`
	SelectorSeed uint64        `mapstructure:"selector-seed"`
	Listen       string        `mapstructure:"listen"`
	RespListen   string        `mapstructure:"resp-listen"`
	StatsPeriod  time.Duration `mapstructure:"stats-period"`
}

func loadConfig(c *Config) error {
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}
