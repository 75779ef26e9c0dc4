package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/JAX838/delight-vision-sounds/internal/services"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	catalog := services.NewCatalogService(config.API.BaseURL, nil, config.API.RateLimit)
	admin := services.NewAdminService(config.API.BaseURL, nil, config.Auth.TokenFile())

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: catalog,
		Admin:   admin,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "dvs",
		Usage:    "Browse the Delight Vision Sounds catalog and manage your cart",
		Version:  "0.5.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
