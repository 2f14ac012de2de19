package keys

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestDeriveKey(t *testing.T) {
	a, err := DeriveKey(testSecret, PurposeSignerKEK)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	b, _ := DeriveKey(testSecret, PurposeSignerKEK)
	if !bytes.Equal(a, b) || len(a) != 32 {
		t.Fatalf("derivation must be deterministic and 32 bytes")
	}

	c, _ := DeriveKey(testSecret, PurposeAuthToken)
	if bytes.Equal(a, c) {
		t.Fatal("different purposes produced the same key")
	}

	if _, err := DeriveKey([]byte("short"), PurposeSignerKEK); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestEncryptDecryptPrivateKey(t *testing.T) {
	key, err := GenerateSigner()
	if err != nil {
		t.Fatalf("GenerateSigner failed: %v", err)
	}
	kek, _ := DeriveKey(testSecret, PurposeSignerKEK)

	encrypted, err := EncryptPrivateKey(crypto.FromECDSA(key), kek)
	if err != nil {
		t.Fatalf("EncryptPrivateKey failed: %v", err)
	}
	if _, err := base64.StdEncoding.DecodeString(encrypted); err != nil {
		t.Fatalf("encrypted key is not valid base64: %v", err)
	}

	decrypted, err := DecryptPrivateKey(encrypted, kek)
	if err != nil {
		t.Fatalf("DecryptPrivateKey failed: %v", err)
	}
	if !bytes.Equal(decrypted, crypto.FromECDSA(key)) {
		t.Fatal("decrypted key does not match")
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	key, _ := GenerateSigner()
	kek1, _ := DeriveKey(testSecret, PurposeSignerKEK)
	kek2, _ := DeriveKey(testSecret, PurposeAuthToken)

	encrypted, err := EncryptPrivateKey(crypto.FromECDSA(key), kek1)
	if err != nil {
		t.Fatalf("EncryptPrivateKey failed: %v", err)
	}
	if _, err := DecryptPrivateKey(encrypted, kek2); err == nil {
		t.Fatal("expected error decrypting with wrong key")
	}
}

func TestEncryptInvalidKeySizes(t *testing.T) {
	key, _ := GenerateSigner()
	if _, err := EncryptPrivateKey(crypto.FromECDSA(key), make([]byte, 16)); err == nil {
		t.Error("expected error for short key-encryption key")
	}
	if _, err := EncryptPrivateKey([]byte{1, 2, 3}, make([]byte, 32)); err == nil {
		t.Error("expected error for short private key")
	}
	if _, err := DecryptPrivateKey("AAAA", make([]byte, 32)); err == nil {
		t.Error("expected error for truncated ciphertext")
	}
}

func TestSealAndLoadSigner(t *testing.T) {
	key, _ := GenerateSigner()

	sealed, err := SealSigner(key, testSecret)
	if err != nil {
		t.Fatalf("SealSigner failed: %v", err)
	}
	loaded, err := LoadSigner(sealed, testSecret)
	if err != nil {
		t.Fatalf("LoadSigner failed: %v", err)
	}
	if Address(loaded) != Address(key) {
		t.Fatalf("loaded signer %s, want %s", Address(loaded).Hex(), Address(key).Hex())
	}

	if _, err := LoadSigner(sealed, []byte("another-secret-of-32-bytes------")); err == nil {
		t.Fatal("expected error loading with another master secret")
	}
}
