package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/yanqian/travel-wellness/internal/domain/exposure"
	"github.com/yanqian/travel-wellness/internal/domain/hydration"
	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
	"github.com/yanqian/travel-wellness/internal/infra/config"
	"github.com/yanqian/travel-wellness/internal/interface/cli"
	"github.com/yanqian/travel-wellness/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("config: %v", err))
		os.Exit(2)
	}
	log := logger.NewCLI(os.Stderr)

	svc := cli.Services{
		JetLag:    jetlag.NewService(jetlag.Config{Policy: cfg.JetLag.Policy()}, nil, log),
		Exposure:  exposure.NewService(exposure.Config{Policy: cfg.Exposure.Policy()}, log),
		Hydration: hydration.NewService(hydration.Config{Policy: cfg.Hydration.Policy()}, log),
	}
	if err := cli.NewRootCommand(svc, os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
