package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
)

var tokenKey = []byte("0123456789abcdef0123456789abcdef")

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer(tokenKey, "bridge-tracker", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer failed: %v", err)
	}

	token, expires, err := issuer.Issue("0x52908400098527886E0F7030069857D2E4169EE7")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Fatalf("expiry %s is in the past", expires)
	}

	addr, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if addr != "0x52908400098527886e0f7030069857d2e4169ee7" {
		t.Fatalf("subject = %s", addr)
	}
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer, _ := NewTokenIssuer(tokenKey, "bridge-tracker", time.Hour)
	token, _, _ := issuer.Issue("0x52908400098527886E0F7030069857D2E4169EE7")

	other, _ := NewTokenIssuer([]byte("another-key-another-key-another-"), "bridge-tracker", time.Hour)
	if _, err := other.Verify(token); err == nil {
		t.Error("expected signature mismatch")
	}

	wrongIssuer, _ := NewTokenIssuer(tokenKey, "someone-else", time.Hour)
	if _, err := wrongIssuer.Verify(token); err == nil {
		t.Error("expected issuer mismatch")
	}

	expired, _ := NewTokenIssuer(tokenKey, "bridge-tracker", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, _, _ := expired.Issue("0x52908400098527886E0F7030069857D2E4169EE7")
	if _, err := issuer.Verify(old); err == nil {
		t.Error("expected expired token to be rejected")
	}

	if _, err := NewTokenIssuer([]byte("short"), "x", time.Hour); err == nil {
		t.Error("expected short key to be rejected")
	}
}

func TestVerifyLogin(t *testing.T) {
	key, _ := crypto.GenerateKey()
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()
	now := time.Unix(1_700_000_000, 0)

	msg := LoginMessage("bridge-tracker", addr, now)
	sig, err := SignEIP191(msg, key)
	if err != nil {
		t.Fatalf("SignEIP191 failed: %v", err)
	}

	got, err := VerifyLogin("bridge-tracker", msg, sig, 5*time.Minute, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("VerifyLogin failed: %v", err)
	}
	if got != strings.ToLower(addr) {
		t.Fatalf("address = %s, want %s", got, addr)
	}

	if _, err := VerifyLogin("bridge-tracker", msg, sig, 5*time.Minute, now.Add(time.Hour)); err == nil {
		t.Error("expected stale login to be rejected")
	}
	if _, err := VerifyLogin("other", msg, sig, 5*time.Minute, now); err == nil {
		t.Error("expected other issuer to be rejected")
	}

	otherKey, _ := crypto.GenerateKey()
	forged, _ := SignEIP191(msg, otherKey)
	if _, err := VerifyLogin("bridge-tracker", msg, forged, 5*time.Minute, now); err == nil {
		t.Error("expected signature from another key to be rejected")
	}
}

func TestMiddleware(t *testing.T) {
	issuer, _ := NewTokenIssuer(tokenKey, "bridge-tracker", time.Hour)
	token, _, _ := issuer.Issue("0x52908400098527886E0F7030069857D2E4169EE7")

	var seen string
	h := Middleware(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = AddressFromContext(r.Context())
		if err := RequireOwner(r, "0x52908400098527886E0F7030069857D2E4169EE7", true); err != nil {
			t.Errorf("RequireOwner failed: %v", err)
		}
		if err := RequireOwner(r, "0x0000000000000000000000000000000000000001", true); err == nil {
			t.Error("expected forbidden for another address")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent || seen != "0x52908400098527886e0f7030069857d2e4169ee7" {
		t.Fatalf("code=%d address=%q", rec.Code, seen)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token code = %d", rec.Code)
	}
}
