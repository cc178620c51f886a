// Package config provides YAML configuration loading with validation and
// environment variable substitution for the token tools.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Test-fixture defaults. These are deliberately throwaway values for
// exercising the API locally and must never be promoted to a real deployment.
const (
	TestJWTSecret   = "zkpay-jwt-secret-key-2025"
	TestUserAddress = "0x742d35Cc6634C0532925a3b0F26750C66d78EB66"
	TestChainID     = 714
	TestIssuer      = "zkpay-backend"
	TestTOTPSecret  = "IVQXEZLNJVQXEZLNJVQXEZLNJVQXEZLN" // base32 of "ENCLAVE2025ADMIN"

	// DefaultTTL is the token validity window.
	DefaultTTL = 24 * time.Hour
)

// Config is the top-level token-tools configuration.
type Config struct {
	Token TokenConfig `yaml:"token" json:"token"`
	TOTP  TOTPConfig  `yaml:"totp" json:"totp"`
}

// TokenConfig holds the JWT minting settings.
type TokenConfig struct {
	Secret      string        `yaml:"secret" json:"secret"`
	UserAddress string        `yaml:"user_address" json:"user_address"`
	ChainID     int           `yaml:"chain_id" json:"chain_id"`
	Issuer      string        `yaml:"issuer" json:"issuer"`
	TTL         time.Duration `yaml:"ttl" json:"ttl"`
}

// TOTPConfig holds the admin TOTP code generator settings.
type TOTPConfig struct {
	Secret string `yaml:"secret" json:"secret"` // base32-encoded shared secret
}

var envVarRe = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns in s with the corresponding
// environment variable value.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		return match
	})
}

// Default returns the built-in test-fixture configuration, with JWT_SECRET and
// ADMIN_TOTP_SECRET environment overrides applied. A .env file in the working
// directory is loaded first if present.
func Default() (*Config, error) {
	loadDotEnv()

	var cfg Config
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Load reads and parses a YAML configuration file, applies environment
// variable substitution, sets defaults, and validates the result.
func Load(path string) (*Config, error) {
	loadDotEnv()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration from raw YAML bytes. Useful for testing.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv loads a .env file from the working directory. Existing
// environment variables are never overwritten; a missing file is fine.
func loadDotEnv() {
	_ = godotenv.Load()
}

func applyDefaults(cfg *Config) {
	if cfg.Token.Secret == "" {
		cfg.Token.Secret = TestJWTSecret
	}
	if cfg.Token.UserAddress == "" {
		cfg.Token.UserAddress = TestUserAddress
	}
	if cfg.Token.ChainID == 0 {
		cfg.Token.ChainID = TestChainID
	}
	if cfg.Token.Issuer == "" {
		cfg.Token.Issuer = TestIssuer
	}
	if cfg.Token.TTL == 0 {
		cfg.Token.TTL = DefaultTTL
	}
	if cfg.TOTP.Secret == "" {
		cfg.TOTP.Secret = TestTOTPSecret
	}
}

// applyEnvOverrides applies JWT_SECRET and ADMIN_TOTP_SECRET on top of
// whatever the file or defaults provided, matching the behavior of the
// backend's own dev scripts.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Token.Secret = v
	}
	if v := os.Getenv("ADMIN_TOTP_SECRET"); v != "" {
		cfg.TOTP.Secret = v
	}
}

func validate(cfg *Config) error {
	if cfg.Token.Secret == "" {
		return fmt.Errorf("token.secret must not be empty")
	}
	if cfg.Token.UserAddress == "" {
		return fmt.Errorf("token.user_address must not be empty")
	}
	if cfg.Token.ChainID < 1 {
		return fmt.Errorf("token.chain_id must be positive, got %d", cfg.Token.ChainID)
	}
	if cfg.Token.TTL <= 0 {
		return fmt.Errorf("token.ttl must be positive, got %s", cfg.Token.TTL)
	}
	if cfg.TOTP.Secret == "" {
		return fmt.Errorf("totp.secret must not be empty")
	}
	return nil
}
