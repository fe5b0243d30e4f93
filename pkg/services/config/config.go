package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// App holds the runtime configuration for the web server and CLI.
type App struct {
	Addr          string        `mapstructure:"addr"`
	GenerateDelay time.Duration `mapstructure:"generate_delay"`
	CheckoutURL   string        `mapstructure:"checkout_url"`
	MonthlyPrice  int           `mapstructure:"monthly_price"`
	YearlyPrice   int           `mapstructure:"yearly_price"`
}

// Load reads the app config. path may be empty, in which case defaults
// and GRANTFORGE_* environment variables apply.
func Load(path string) (*App, error) {
	v := viper.New()
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("generate_delay", 2*time.Second)
	v.SetDefault("checkout_url", "https://checkout.example.com/grant-forge")
	v.SetDefault("monthly_price", 29)
	v.SetDefault("yearly_price", 290)

	v.SetEnvPrefix("GRANTFORGE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg App
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	return &cfg, nil
}
