// Package token mints signed JWTs for exercising the zkpay API's
// authentication path during manual testing.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zkpay/token-tools/internal/config"
)

// Claims is the payload carried by a minted token. UniversalAddress is the
// "{chain_id}:{user_address}" composite the backend keys accounts by.
type Claims struct {
	UserAddress      string `json:"user_address"`
	UniversalAddress string `json:"universal_address"`
	ChainID          int    `json:"chain_id"`
	jwt.RegisteredClaims
}

// Mint builds the claims payload for cfg and signs it with HMAC-SHA256 over
// the shared secret. The validity window is [now, now+TTL), with nbf == iat
// and sub == user_address. Minting is deterministic for a fixed (cfg, now).
func Mint(cfg config.TokenConfig, now time.Time) (string, Claims, error) {
	claims := Claims{
		UserAddress:      cfg.UserAddress,
		UniversalAddress: fmt.Sprintf("%d:%s", cfg.ChainID, cfg.UserAddress),
		ChainID:          cfg.ChainID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   cfg.UserAddress,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", Claims{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, claims, nil
}
