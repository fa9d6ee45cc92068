package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/multiorder/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %s\n", err.Error())
		os.Exit(1)
	}
	cli.Main(ctx, NewMux(cfg, cfg.Logger(os.Stderr)))
}

func NewMux(cfg config.Config, logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("demo", DemoCommand{Config: &cfg})
	m.Handle("show", ShowCommand{Config: &cfg, Logger: logger})
	m.Handle("repl", ReplCommand{Config: &cfg, Logger: logger})
	return &m
}
