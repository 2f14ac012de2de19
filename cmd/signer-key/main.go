// Command signer-key seals a claim signer private key for signer.encrypted_key.
//
// It reads the master secret from the environment variable named by -secret-env
// and either generates a new key or imports a hex key from -import.
package main

import (
	"crypto/ecdsa"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/bridge-tracker/pkg/keys"
)

func main() {
	secretEnv := flag.String("secret-env", "SIGNER_MASTER_SECRET", "Environment variable holding the master secret")
	importHex := flag.String("import", "", "Hex encoded private key to seal instead of generating one")
	flag.Parse()

	secret := os.Getenv(*secretEnv)
	if secret == "" {
		fail("master secret not set: env=%s (hint: openssl rand -base64 32)", *secretEnv)
	}

	var (
		key *ecdsa.PrivateKey
		err error
	)
	if *importHex != "" {
		key, err = crypto.HexToECDSA(strings.TrimPrefix(*importHex, "0x"))
	} else {
		key, err = keys.GenerateSigner()
	}
	if err != nil {
		fail("load key: %v", err)
	}

	sealed, err := keys.SealSigner(key, []byte(secret))
	if err != nil {
		fail("seal key: %v", err)
	}

	fmt.Printf("address:       %s\n", keys.Address(key).Hex())
	fmt.Printf("encrypted_key: %s\n", sealed)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
