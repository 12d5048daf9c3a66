package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex-encoded SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds "prefix:sha256(json(parts))".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Keyer derives cache keys for operation results.
type Keyer interface {
	// OperationKey identifies the result of running the named operation from
	// set with the given encoded arguments on the input graph whose encoding
	// hashes to inputHash.
	OperationKey(set, name string, args []byte, inputHash string) string
}

// DefaultKeyer produces unprefixed "op:<hash>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// OperationKey implements Keyer.
func (DefaultKeyer) OperationKey(set, name string, args []byte, inputHash string) string {
	return hashKey("op", set, name, string(args), inputHash)
}
