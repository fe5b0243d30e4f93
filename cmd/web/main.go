package main

import (
	"fmt"
	"os"

	"github.com/ngo-tools/grant-forge/pkg/server"
	"github.com/ngo-tools/grant-forge/pkg/services/config"
	"github.com/ngo-tools/grant-forge/pkg/services/generator"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Grant Forge web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (defaults and GRANTFORGE_* env vars apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := generator.NewService(generator.Options{
		Delay: cfg.GenerateDelay,
	})

	for _, t := range svc.Types() {
		logger.Info().Msgf("Generator available: `%s` (%s)", t, t.DisplayName())
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:        cfg.Addr,
		CheckoutURL: cfg.CheckoutURL,
		Dependencies: server.Dependencies{
			Generator: svc,
		},
	})

	return api.Start()
}
