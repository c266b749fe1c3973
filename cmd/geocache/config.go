package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vatsimnerd/geocache"
)

type config struct {
	Precision uint8   `mapstructure:"precision"`
	Backend   string  `mapstructure:"backend"`
	MaxLength float64 `mapstructure:"max_length"`
	LogLevel  string  `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("precision", geocache.DefaultPrecision)
	v.SetDefault("backend", string(geocache.BackendRTreeGo))
	v.SetDefault("max_length", 0)
	v.SetDefault("log_level", "info")
}

// readConfig loads geocache.yaml from the working directory or ./data/,
// then GEOCACHE_* variables, optionally read from envFile first. A missing
// config file is not an error.
func readConfig(v *viper.Viper, configFile, envFile string) (*config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	setDefaults(v)
	v.SetEnvPrefix("geocache")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("geocache")
		v.AddConfigPath(".")
		v.AddConfigPath("./data/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func (c *config) setupLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)
	return nil
}

func (c *config) newCache() (*geocache.Cache, error) {
	return geocache.New(
		geocache.WithPrecision(c.Precision),
		geocache.WithBackend(geocache.IndexBackend(c.Backend)),
	)
}
