package benchmark

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyPrefix namespaces every object written by the tool, keeping generated
// keys clear of pre-existing objects in the bucket.
const KeyPrefix = "s3load/"

// GenerateRandomName creates a random hex string of length bytes of entropy.
func GenerateRandomName(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random name: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateObjectKey returns a fresh object key under KeyPrefix. The 128-bit
// random identifier makes collisions across runs and concurrent invocations
// vanishingly unlikely.
func GenerateObjectKey() (string, error) {
	name, err := GenerateRandomName(16)
	if err != nil {
		return "", err
	}
	return KeyPrefix + name, nil
}
