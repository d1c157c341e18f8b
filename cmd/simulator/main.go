package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/fantacalcio-season/internal/app"
	"github.com/riskibarqy/fantacalcio-season/internal/config"
	"github.com/riskibarqy/fantacalcio-season/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := app.New(cfg, logger).Run(ctx)
	if err != nil {
		logger.Error("season run failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(report)
}
