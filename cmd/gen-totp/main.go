// Package main is the entry point for gen-totp, which prints the current
// TOTP code for the admin test secret. Codes rotate every 30 seconds.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/zkpay/token-tools/internal/config"
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

	code, err := totp.GenerateCode(cfg.TOTP.Secret, time.Now())
	if err != nil {
		logger.Error("failed to generate TOTP code", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Current TOTP Code: %s\n", code)
	fmt.Printf("Secret: %s\n", cfg.TOTP.Secret)
	fmt.Println("Valid for: ~30 seconds")
}
