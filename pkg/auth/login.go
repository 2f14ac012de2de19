package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LoginMessage is the text a wallet signs to prove it owns address.
func LoginMessage(issuer, address string, at time.Time) string {
	return fmt.Sprintf("Sign in to %s\nAddress: %s\nIssued At: %d", issuer, strings.ToLower(address), at.Unix())
}

// VerifyLogin checks a signed LoginMessage and returns the proven address.
// The message must name this issuer and be no older than maxAge.
func VerifyLogin(issuer, message, signature string, maxAge time.Duration, now time.Time) (string, error) {
	lines := strings.Split(message, "\n")
	if len(lines) != 3 || lines[0] != "Sign in to "+issuer {
		return "", errors.New("malformed login message")
	}
	claimed, ok := strings.CutPrefix(lines[1], "Address: ")
	if !ok || !ValidateEVMAddress(claimed) {
		return "", errors.New("login message has no valid address")
	}
	rawTS, ok := strings.CutPrefix(lines[2], "Issued At: ")
	if !ok {
		return "", errors.New("login message has no timestamp")
	}
	ts, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid login timestamp: %w", err)
	}
	issued := time.Unix(ts, 0)
	if now.Sub(issued) > maxAge || issued.Sub(now) > time.Minute {
		return "", errors.New("login message expired")
	}

	recovered, err := VerifyEIP191Signature(message, signature)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(recovered.Hex(), claimed) {
		return "", errors.New("signature does not match address")
	}
	return strings.ToLower(claimed), nil
}
