// Package keys manages the claim signer key and the secrets derived from the
// service master secret.
// The signer key is a secp256k1 key kept AES-256-GCM encrypted at rest under a
// key-encryption key derived with HKDF-SHA256.
package keys

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/hkdf"
)

// Purposes select independent keys derived from one master secret.
const (
	PurposeSignerKEK = "bridge-tracker-signer-kek"
	PurposeAuthToken = "bridge-tracker-auth-token"
)

const (
	keySize         = 32
	minSecretLength = 16
)

// DeriveKey derives a 32-byte key for purpose from masterSecret.
func DeriveKey(masterSecret []byte, purpose string) ([]byte, error) {
	if len(masterSecret) < minSecretLength {
		return nil, fmt.Errorf("master secret must be at least %d bytes", minSecretLength)
	}

	r := hkdf.New(sha256.New, masterSecret, nil, []byte(purpose))
	key := make([]byte, keySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// EncryptPrivateKey encrypts a 32-byte secp256k1 key with AES-256-GCM.
// The result is base64(nonce || ciphertext || tag).
func EncryptPrivateKey(privateKey []byte, kek []byte) (string, error) {
	if len(privateKey) != keySize {
		return "", fmt.Errorf("private key must be %d bytes", keySize)
	}
	gcm, err := newGCM(kek)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	return base64.StdEncoding.EncodeToString(gcm.Seal(nonce, nonce, privateKey, nil)), nil
}

// DecryptPrivateKey reverses EncryptPrivateKey.
func DecryptPrivateKey(encrypted string, kek []byte) ([]byte, error) {
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	if len(raw) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	if len(plaintext) != keySize {
		return nil, fmt.Errorf("decrypted key has wrong size: got %d, want %d", len(plaintext), keySize)
	}
	return plaintext, nil
}

func newGCM(kek []byte) (cipher.AEAD, error) {
	if len(kek) != keySize {
		return nil, fmt.Errorf("key-encryption key must be %d bytes (AES-256)", keySize)
	}
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// SealSigner encrypts key under the signer KEK derived from masterSecret.
func SealSigner(key *ecdsa.PrivateKey, masterSecret []byte) (string, error) {
	kek, err := DeriveKey(masterSecret, PurposeSignerKEK)
	if err != nil {
		return "", err
	}
	return EncryptPrivateKey(crypto.FromECDSA(key), kek)
}

// LoadSigner decrypts a blob produced by SealSigner.
func LoadSigner(encrypted string, masterSecret []byte) (*ecdsa.PrivateKey, error) {
	kek, err := DeriveKey(masterSecret, PurposeSignerKEK)
	if err != nil {
		return nil, err
	}
	raw, err := DecryptPrivateKey(encrypted, kek)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal signer key: %w", err)
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid signer key: %w", err)
	}
	return key, nil
}

// GenerateSigner creates a new secp256k1 signer key.
func GenerateSigner() (*ecdsa.PrivateKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secp256k1 key: %w", err)
	}
	return key, nil
}

// Address returns the account controlled by key.
func Address(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}
