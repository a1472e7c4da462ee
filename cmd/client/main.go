package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"Nuremento/internal/cli/commands"
	"Nuremento/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.NewConfig()
	if cfg.Version {
		writeVersion(os.Stdout, cfg)
		return 0
	}

	// Ctrl+C отменяет текущий HTTP-запрос к серверу
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.Dispatch(ctx, cfg, flag.Args())
}

func writeVersion(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "nuremento %s (built %s)\nserver: %s\ntoken file: %s\n",
		version, buildDate, cfg.ServerURL, cfg.TokenFile)
}
