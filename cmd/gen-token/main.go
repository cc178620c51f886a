// Package main is the entry point for gen-token, a developer utility that
// mints a signed JWT for exercising the zkpay API's authentication path.
// With no flags it signs the built-in test fixture; -config points at an
// optional YAML override file.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/zkpay/token-tools/internal/config"
	"github.com/zkpay/token-tools/internal/token"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional; built-in test defaults when empty)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	signed, claims, err := token.Mint(cfg.Token, time.Now().UTC())
	if err != nil {
		logger.Error("failed to sign token", "error", err)
		os.Exit(1)
	}

	if err := token.WriteReport(os.Stdout, signed, claims); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}
