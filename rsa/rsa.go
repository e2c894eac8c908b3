// Package rsa implements the top-level RSA engine: raw modular-exponentiation
// encrypt/decrypt over biguint.Uint, and the message-level
// EncryptMessageOAEP/DecryptMessageOAEP and EncryptMessageRaw/DecryptMessageRaw
// operations that drive a padding scheme,
// big-integer conversion, and modular exponentiation together.
package rsa

import (
	"fmt"
	"hash"

	"cryptoengine/biguint"
	"cryptoengine/modexp"
	"cryptoengine/padding"
	"cryptoengine/rsakey"
)

// PublicKey and PrivateKey are re-exported so callers need only import rsa
// for the common case of encrypting/decrypting with keys parsed elsewhere.
type PublicKey = rsakey.PublicKey
type PrivateKey = rsakey.PrivateKey

// Encrypt is the raw public-key operation: c = m^e mod n.
func Encrypt(pub PublicKey, m biguint.Uint) biguint.Uint {
	return modexp.PowMod(m, pub.E, pub.N)
}

// Decrypt is the raw private-key operation: m = c^d mod n.
func Decrypt(priv PrivateKey, c biguint.Uint) biguint.Uint {
	return modexp.PowMod(c, priv.D, priv.N)
}

// modulusByteLen returns k = ceil(bits_used(n)/8), the byte length of the
// modulus.
func modulusByteLen(n biguint.Uint) int {
	return (n.BitsUsed() + 7) / 8
}

// EncryptMessageOAEP OAEP-pads plaintext (using newHash as both the label
// hash and MGF1 hash, and seed as the OAEP seed; pass
// padding.OAEPDefaultSeed(newHash) for the engine's documented fixed-seed
// behavior), interprets the padded block as a big-endian integer, and raises
// it to e mod n. The ciphertext is left-zero-padded to exactly k bytes.
func EncryptMessageOAEP(pub PublicKey, label, plaintext []byte, newHash func() hash.Hash, seed []byte) ([]byte, error) {
	k := modulusByteLen(pub.N)
	em, err := padding.OAEPEncode(label, plaintext, k, newHash, seed)
	if err != nil {
		return nil, err
	}
	m := biguint.FromBigEndian(em)
	if biguint.Cmp(m, pub.N) >= 0 {
		return nil, fmt.Errorf("rsa: padded message is not smaller than the modulus")
	}
	c := Encrypt(pub, m)
	return c.ToBigEndianPadded(k), nil
}

// DecryptMessageOAEP reverses EncryptMessageOAEP.
func DecryptMessageOAEP(priv PrivateKey, label, ciphertext []byte, newHash func() hash.Hash) ([]byte, error) {
	k := modulusByteLen(priv.N)
	if len(ciphertext) != k {
		return nil, fmt.Errorf("rsa: ciphertext length %d, want modulus length %d", len(ciphertext), k)
	}
	c := biguint.FromBigEndian(ciphertext)
	m := Decrypt(priv, c)
	em := m.ToBigEndianPadded(k)
	return padding.OAEPDecode(label, em, k, newHash)
}

// EncryptMessageRaw pads plaintext to exactly k bytes with no OAEP structure
// (left-padding with zero bytes), for callers that want the unpadded raw
// textbook-RSA primitive exercised end to end. A plaintext longer than k
// bytes, or whose value is not smaller than the modulus, is rejected.
func EncryptMessageRaw(pub PublicKey, plaintext []byte) ([]byte, error) {
	k := modulusByteLen(pub.N)
	if len(plaintext) > k {
		return nil, fmt.Errorf("rsa: plaintext of %d bytes does not fit in a %d-byte modulus", len(plaintext), k)
	}
	m := biguint.FromBigEndian(plaintext)
	if biguint.Cmp(m, pub.N) >= 0 {
		return nil, fmt.Errorf("rsa: plaintext value is not smaller than the modulus")
	}
	c := Encrypt(pub, m)
	return c.ToBigEndianPadded(k), nil
}

// DecryptMessageRaw reverses EncryptMessageRaw, returning the k-byte,
// left-zero-padded plaintext value with no unpadding applied.
func DecryptMessageRaw(priv PrivateKey, ciphertext []byte) ([]byte, error) {
	k := modulusByteLen(priv.N)
	if len(ciphertext) != k {
		return nil, fmt.Errorf("rsa: ciphertext length %d, want modulus length %d", len(ciphertext), k)
	}
	c := biguint.FromBigEndian(ciphertext)
	m := Decrypt(priv, c)
	return m.ToBigEndianPadded(k), nil
}
