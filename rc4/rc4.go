// Package rc4 implements the RC4 stream cipher from scratch: key-scheduling
// algorithm (KSA) followed by the pseudo-random generation algorithm (PRGA).
// RC4 is a stream cipher, so unlike the block ciphers in this module it is
// used directly rather than through the blockcipher driver.
package rc4

import "fmt"

// Cipher holds RC4's 256-byte permutation state and the i/j stream indices.
type Cipher struct {
	s    [256]byte
	i, j byte
}

// New runs the key-scheduling algorithm on key (1 to 256 bytes).
func New(key []byte) (*Cipher, error) {
	if len(key) == 0 || len(key) > 256 {
		return nil, fmt.Errorf("rc4: key length must be 1..256 bytes, got %d", len(key))
	}
	c := &Cipher{}
	for i := 0; i < 256; i++ {
		c.s[i] = byte(i)
	}
	var j byte
	for i := 0; i < 256; i++ {
		j = j + c.s[i] + key[i%len(key)]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}
	return c, nil
}

// Stream generates n bytes of RC4 keystream (the PRGA).
func (c *Cipher) Stream(n int) []byte {
	out := make([]byte, n)
	for k := 0; k < n; k++ {
		c.i++
		c.j += c.s[c.i]
		c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]
		out[k] = c.s[c.s[c.i]+c.s[c.j]]
	}
	return out
}

// XORKeyStream XORs src with the keystream, writing into dst (which may
// alias src), advancing the stream state by len(src) bytes.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	ks := c.Stream(len(src))
	for i := range src {
		dst[i] = src[i] ^ ks[i]
	}
}

// Encrypt is a one-shot convenience wrapper: New(key) followed by
// XORKeyStream over the full plaintext. RC4 is symmetric, so Decrypt is the
// same operation.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	c, err := New(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	c.XORKeyStream(out, plaintext)
	return out, nil
}
