// Package config loads adapter settings from an optional YAML file, a .env
// file and MYQ_-prefixed environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type Config struct {
	Endpoint             string        `mapstructure:"endpoint"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	ListenAddr           string        `mapstructure:"listen_addr"`
	ManufacturerName     string        `mapstructure:"manufacturer_name"`
	DependentServiceName string        `mapstructure:"dependent_service_name"`
	Logging              LoggingConfig `mapstructure:"logging"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint", "https://myq.thomasmunduchira.com")
	v.SetDefault("request_timeout", 2250*time.Millisecond)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("manufacturer_name", "Chamberlain/LiftMaster")
	v.SetDefault("dependent_service_name", "MyQ Service")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment apply.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MYQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}
