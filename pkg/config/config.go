package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

const (
	DefaultAddr            = ":8080"
	DefaultShards          = 32
	DefaultLogLevel        = "info"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	Addr            string        `mapstructure:"addr"`
	Shards          int           `mapstructure:"shards"`
	LogLevel        string        `mapstructure:"log_level"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load reads cmdkv.yaml from the working directory or $HOME/.cmdkv when one
// exists, then applies CMDKV_* environment overrides on top of the defaults.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("shards", DefaultShards)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("read_timeout", DefaultReadTimeout)
	v.SetDefault("write_timeout", DefaultWriteTimeout)
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout)

	v.SetConfigName("cmdkv")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.cmdkv")

	v.SetEnvPrefix("CMDKV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Shards = ShardCount(cfg.Shards)
	return &cfg, nil
}

// ShardCount rounds n up to the next power of two. Non-positive values fall
// back to DefaultShards.
func ShardCount(n int) int {
	if n <= 0 {
		return DefaultShards
	}
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}

func Module() fx.Option {
	return fx.Provide(Load)
}
