// ltwfav - Wallpaper favorites management
//
// An offline-first CLI for organizing wallpaper favorites into folders,
// tagging them, localizing their assets, and exchanging collections as
// .ltwfav packages.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/littletree-next/ltwfav/internal/cli"
	"github.com/littletree-next/ltwfav/internal/config"
	"github.com/littletree-next/ltwfav/internal/log"
	"github.com/littletree-next/ltwfav/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	if err := log.Init(paths.Logs); err == nil {
		defer func() { _ = log.Close() }()
	}

	telemetryClient := telemetry.New(nil)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
