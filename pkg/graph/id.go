package graph

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	// IDLength is the length of generated vertex IDs.
	IDLength = 8

	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var alphabetSize = big.NewInt(int64(len(idAlphabet)))

// NewID returns a random 8-character alphanumeric vertex ID.
func NewID() string {
	b := make([]byte, IDLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b)
}

// SequentialIDs returns an ID generator yielding prefix0, prefix1, ... It is
// meant for tests and reproducible fixtures.
func SequentialIDs(prefix string) func() string {
	next := 0
	return func() string {
		id := prefix + strconv.Itoa(next)
		next++
		return id
	}
}
