// Package kdf derives keys from a master secret using standard,
// well-reviewed constructions (PBKDF2, HKDF) rather than the from-scratch
// hashes' own compression functions directly: key-stretching and
// key-derivation want a KDF's extract/expand contract, not a bare digest.
package kdf

import (
	"fmt"
	"hash"
	"io"
	"math"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// DeriveStretched applies PBKDF2 to stretch a low-entropy secret (e.g. a
// passphrase) into a keyLen-byte key, using newHash as the PRF and
// iterations rounds of stretching.
func DeriveStretched(secret, salt []byte, iterations, keyLen int, newHash func() hash.Hash) []byte {
	return pbkdf2.Key(secret, salt, iterations, keyLen, newHash)
}

// DeriveKeys expands a high-entropy master secret into n independent
// keyLen-byte keys via HKDF (extract-then-expand, RFC 5869), using info to
// domain-separate this derivation from any other use of the same secret.
func DeriveKeys(secret, salt, info []byte, newHash func() hash.Hash, n, keyLen int) ([][]byte, error) {
	if n <= 0 || keyLen <= 0 {
		return nil, fmt.Errorf("kdf: n and keyLen must be positive")
	}
	r := hkdf.New(newHash, secret, salt, info)
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = make([]byte, keyLen)
		if _, err := io.ReadFull(r, keys[i]); err != nil {
			return nil, fmt.Errorf("kdf: HKDF expand failed at key %d: %w", i, err)
		}
	}
	return keys, nil
}

// AllDistinct reports whether every key in keys is pairwise distinct, a
// sanity check a KDF's output should always satisfy.
func AllDistinct(keys [][]byte) bool {
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if string(keys[i]) == string(keys[j]) {
				return false
			}
		}
	}
	return true
}

// ShannonEntropy returns the Shannon entropy of data, in bits per byte.
func ShannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}
	entropy := 0.0
	n := float64(len(data))
	for _, count := range freq {
		if count == 0 {
			continue
		}
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// HasSufficientEntropy reports whether data's Shannon entropy meets
// minBitsPerByte, a coarse check that a derived key isn't degenerate.
func HasSufficientEntropy(data []byte, minBitsPerByte float64) bool {
	return ShannonEntropy(data) >= minBitsPerByte
}
