// Command cartographer explores the knowledge domains of an Akashic archive.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	fileconfig "github.com/akashic-archives/cartographer/internal/adapters/driven/config/file"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/cli"
	"github.com/akashic-archives/cartographer/internal/config"
	"github.com/akashic-archives/cartographer/internal/core/services"
	"github.com/akashic-archives/cartographer/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Sync()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	configStore, err := fileconfig.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	settings := services.NewSettingsService(configStore)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetInitializer(newInitializer(settings, os.LookupEnv))

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}
