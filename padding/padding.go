// Package padding implements the block-cipher padding schemes the blockcipher
// driver consumes (bit padding, PKCS#7) and the OAEP padding RSA uses.
package padding

import "fmt"

// BitPadding appends a single 0x80 byte, then zero bytes, up to the block
// size. Unpadding scans from the end of the block for the last 0x80 byte.
type BitPadding struct{}

func (BitPadding) Pad(partial []byte, blockSize int) []byte {
	out := make([]byte, blockSize)
	copy(out, partial)
	out[len(partial)] = 0x80
	return out
}

func (BitPadding) Unpad(block []byte) ([]byte, error) {
	for i := len(block) - 1; i >= 0; i-- {
		if block[i] == 0x80 {
			return block[:i], nil
		}
		if block[i] != 0x00 {
			break
		}
	}
	return nil, fmt.Errorf("padding: bit-padding marker 0x80 not found")
}

// PKCS7 appends k copies of the byte k, where k = blockSize - len(partial).
// When the input is already block-aligned (len(partial)==0, so k==blockSize),
// a full extra block of value blockSize is appended so that unpadding is
// always unambiguous.
type PKCS7 struct{}

func (PKCS7) Pad(partial []byte, blockSize int) []byte {
	k := blockSize - len(partial)
	out := make([]byte, blockSize)
	copy(out, partial)
	for i := len(partial); i < blockSize; i++ {
		out[i] = byte(k)
	}
	return out
}

func (PKCS7) Unpad(block []byte) ([]byte, error) {
	n := len(block)
	if n == 0 {
		return nil, fmt.Errorf("padding: empty block")
	}
	k := int(block[n-1])
	if k == 0 || k > n {
		return nil, fmt.Errorf("padding: invalid PKCS#7 length byte %d", k)
	}
	for i := n - k; i < n; i++ {
		if block[i] != byte(k) {
			return nil, fmt.Errorf("padding: inconsistent PKCS#7 padding bytes")
		}
	}
	return block[:n-k], nil
}
