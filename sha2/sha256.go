// Package sha2 implements the SHA-224/256 and SHA-384/512 compression
// functions from scratch, following FIPS 180-4, each with an incremental
// (hash.Hash) and one-shot API.
package sha2

import "encoding/binary"

const (
	Size256      = 32
	Size224      = 28
	BlockSize256 = 64
)

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var initial256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var initial224 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

func rotr32(v uint32, n uint) uint32 { return v>>n | v<<(32-n) }

// Digest256 is an incremental SHA-224/SHA-256 state. It implements
// hash.Hash; is224 selects the truncated SHA-224 variant.
type Digest256 struct {
	h     [8]uint32
	buf   [BlockSize256]byte
	nx    int
	len   uint64
	is224 bool
}

// New256 returns a fresh SHA-256 Digest256.
func New256() *Digest256 { d := &Digest256{}; d.Reset(); return d }

// New224 returns a fresh SHA-224 Digest256.
func New224() *Digest256 { d := &Digest256{is224: true}; d.Reset(); return d }

func (d *Digest256) Reset() {
	if d.is224 {
		d.h = initial224
	} else {
		d.h = initial256
	}
	d.nx = 0
	d.len = 0
}

func (d *Digest256) Size() int {
	if d.is224 {
		return Size224
	}
	return Size256
}
func (d *Digest256) BlockSize() int { return BlockSize256 }

func (d *Digest256) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		copied := copy(d.buf[d.nx:], p)
		d.nx += copied
		p = p[copied:]
		if d.nx == BlockSize256 {
			d.block(d.buf[:])
			d.nx = 0
		}
	}
	for len(p) >= BlockSize256 {
		d.block(p[:BlockSize256])
		p = p[BlockSize256:]
	}
	if len(p) > 0 {
		d.nx = copy(d.buf[:], p)
	}
	return n, nil
}

func (d *Digest256) Sum(b []byte) []byte {
	clone := *d
	full := clone.finish()
	if d.is224 {
		return append(b, full[:Size224]...)
	}
	return append(b, full[:]...)
}

func (d *Digest256) finish() [Size256]byte {
	bitLen := d.len * 8
	d.Write([]byte{0x80})
	for d.nx != 56 {
		d.Write([]byte{0x00})
	}
	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], bitLen)
	d.Write(lenBytes[:])

	var out [Size256]byte
	for i, hv := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], hv)
	}
	return out
}

func (d *Digest256) block(block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, dd, e, f, g, h := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7]
	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + k256[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h = g
		g = f
		f = e
		e = dd + temp1
		dd = c
		c = b
		b = a
		a = temp1 + temp2
	}
	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	d.h[5] += f
	d.h[6] += g
	d.h[7] += h
}

// Sum256 computes the SHA-256 digest of data in one call.
func Sum256(data []byte) [Size256]byte {
	d := New256()
	d.Write(data)
	var out [Size256]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum224 computes the SHA-224 digest of data in one call.
func Sum224(data []byte) [Size224]byte {
	d := New224()
	d.Write(data)
	var out [Size224]byte
	copy(out[:], d.Sum(nil))
	return out
}
