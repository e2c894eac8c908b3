package padding

import "hash"

// MGF1 implements the mask-generation function from PKCS#1 v2.1: it produces
// length bytes by concatenating H(seed||BE32(0)), H(seed||BE32(1)), ... and
// truncating to length.
func MGF1(seed []byte, length int, newHash func() hash.Hash) []byte {
	h := newHash()
	out := make([]byte, 0, length+h.Size())
	var counter [4]byte
	for len(out) < length {
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		out = h.Sum(out)
		incCounter(&counter)
	}
	return out[:length]
}

func incCounter(c *[4]byte) {
	if c[3]++; c[3] != 0 {
		return
	}
	if c[2]++; c[2] != 0 {
		return
	}
	if c[1]++; c[1] != 0 {
		return
	}
	c[0]++
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
