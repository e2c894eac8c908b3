package sha2

import "encoding/binary"

const (
	Size512      = 64
	Size384      = 48
	BlockSize512 = 128
)

var k512 = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

var initial512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var initial384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

func rotr64(v uint64, n uint) uint64 { return v>>n | v<<(64-n) }

// Digest512 is an incremental SHA-384/SHA-512 state. It implements
// hash.Hash; is384 selects the truncated SHA-384 variant.
type Digest512 struct {
	h     [8]uint64
	buf   [BlockSize512]byte
	nx    int
	lenLo uint64
	lenHi uint64
	is384 bool
}

// New512 returns a fresh SHA-512 Digest512.
func New512() *Digest512 { d := &Digest512{}; d.Reset(); return d }

// New384 returns a fresh SHA-384 Digest512.
func New384() *Digest512 { d := &Digest512{is384: true}; d.Reset(); return d }

func (d *Digest512) Reset() {
	if d.is384 {
		d.h = initial384
	} else {
		d.h = initial512
	}
	d.nx = 0
	d.lenLo, d.lenHi = 0, 0
}

func (d *Digest512) Size() int {
	if d.is384 {
		return Size384
	}
	return Size512
}
func (d *Digest512) BlockSize() int { return BlockSize512 }

func (d *Digest512) addLen(n uint64) {
	lo := d.lenLo + n
	if lo < d.lenLo {
		d.lenHi++
	}
	d.lenLo = lo
}

func (d *Digest512) Write(p []byte) (int, error) {
	n := len(p)
	d.addLen(uint64(n))
	if d.nx > 0 {
		copied := copy(d.buf[d.nx:], p)
		d.nx += copied
		p = p[copied:]
		if d.nx == BlockSize512 {
			d.block(d.buf[:])
			d.nx = 0
		}
	}
	for len(p) >= BlockSize512 {
		d.block(p[:BlockSize512])
		p = p[BlockSize512:]
	}
	if len(p) > 0 {
		d.nx = copy(d.buf[:], p)
	}
	return n, nil
}

func (d *Digest512) Sum(b []byte) []byte {
	clone := *d
	full := clone.finish()
	if d.is384 {
		return append(b, full[:Size384]...)
	}
	return append(b, full[:]...)
}

func (d *Digest512) finish() [Size512]byte {
	// The 128-bit bit-length field: bitLen = byteLen*8, tracked across two
	// 64-bit words since a single uint64 cannot hold a SHA-512 bit count for
	// inputs approaching 2^61 bytes.
	bitLenLo := d.lenLo << 3
	bitLenHi := d.lenHi<<3 | d.lenLo>>61

	d.Write([]byte{0x80})
	for d.nx != 112 {
		d.Write([]byte{0x00})
	}
	var lenBytes [16]byte
	binary.BigEndian.PutUint64(lenBytes[0:8], bitLenHi)
	binary.BigEndian.PutUint64(lenBytes[8:16], bitLenLo)
	d.Write(lenBytes[:])

	var out [Size512]byte
	for i, hv := range d.h {
		binary.BigEndian.PutUint64(out[i*8:], hv)
	}
	return out
}

func (d *Digest512) block(block []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(block[i*8:])
	}
	for i := 16; i < 80; i++ {
		s0 := rotr64(w[i-15], 1) ^ rotr64(w[i-15], 8) ^ (w[i-15] >> 7)
		s1 := rotr64(w[i-2], 19) ^ rotr64(w[i-2], 61) ^ (w[i-2] >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, dd, e, f, g, h := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7]
	for i := 0; i < 80; i++ {
		s1 := rotr64(e, 14) ^ rotr64(e, 18) ^ rotr64(e, 41)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + k512[i] + w[i]
		s0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
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

// Sum512 computes the SHA-512 digest of data in one call.
func Sum512(data []byte) [Size512]byte {
	d := New512()
	d.Write(data)
	var out [Size512]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum384 computes the SHA-384 digest of data in one call.
func Sum384(data []byte) [Size384]byte {
	d := New384()
	d.Write(data)
	var out [Size384]byte
	copy(out[:], d.Sum(nil))
	return out
}
