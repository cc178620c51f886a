package token

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

const banner = "============================================================"

// timestampFormat renders claim timestamps the way the backend logs them.
const timestampFormat = "2006-01-02 15:04:05"

// PrettyJSON renders the claims as indented JSON with the timestamp fields
// formatted as human-readable UTC strings.
func (c Claims) PrettyJSON() (string, error) {
	out := struct {
		UserAddress      string `json:"user_address"`
		UniversalAddress string `json:"universal_address"`
		ChainID          int    `json:"chain_id"`
		Issuer           string `json:"iss"`
		Subject          string `json:"sub"`
		IssuedAt         string `json:"iat"`
		ExpiresAt        string `json:"exp"`
		NotBefore        string `json:"nbf"`
	}{
		UserAddress:      c.UserAddress,
		UniversalAddress: c.UniversalAddress,
		ChainID:          c.ChainID,
		Issuer:           c.Issuer,
		Subject:          c.Subject,
		IssuedAt:         formatClaimTime(c.IssuedAt.Time),
		ExpiresAt:        formatClaimTime(c.ExpiresAt.Time),
		NotBefore:        formatClaimTime(c.NotBefore.Time),
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("rendering claims: %w", err)
	}
	return string(b), nil
}

func formatClaimTime(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

// WriteReport prints the minted token, its claims, and ready-to-paste shell
// invocations that hand the token to test-api.sh via JWT_TOKEN.
func WriteReport(w io.Writer, signed string, claims Claims) error {
	pretty, err := claims.PrettyJSON()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, "JWT Token Generated for Testing")
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Token:")
	fmt.Fprintln(&b, signed)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Claims:")
	fmt.Fprintln(&b, pretty)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, "Usage:")
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "export JWT_TOKEN='%s' && bash test-api.sh\n", signed)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Or:")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "JWT_TOKEN='%s' bash test-api.sh\n", signed)
	fmt.Fprintln(&b)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
