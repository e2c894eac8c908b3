// Package md5 implements MD5 (RFC 1321) from scratch: a 64-round
// Merkle-Damgård compression function over a 4-word, 32-bit state, with
// little-endian word and length-field conventions (unlike the SHA family).
package md5

import "encoding/binary"

const (
	Size      = 16
	BlockSize = 64
)

var initialState = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

var shiftAmounts = [64]uint{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// sineConstants are floor(2^32 * abs(sin(i+1))) for i=0..63.
var sineConstants = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// Digest is an incremental MD5 state. It implements hash.Hash.
type Digest struct {
	h   [4]uint32
	buf [BlockSize]byte
	nx  int
	len uint64
}

func New() *Digest {
	d := &Digest{}
	d.Reset()
	return d
}

func (d *Digest) Reset() {
	d.h = initialState
	d.nx = 0
	d.len = 0
}

func (d *Digest) Size() int      { return Size }
func (d *Digest) BlockSize() int { return BlockSize }

func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		copied := copy(d.buf[d.nx:], p)
		d.nx += copied
		p = p[copied:]
		if d.nx == BlockSize {
			d.block(d.buf[:])
			d.nx = 0
		}
	}
	for len(p) >= BlockSize {
		d.block(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nx = copy(d.buf[:], p)
	}
	return n, nil
}

func (d *Digest) Sum(b []byte) []byte {
	clone := *d
	out := clone.finish()
	return append(b, out[:]...)
}

func (d *Digest) finish() [Size]byte {
	bitLen := d.len * 8
	d.Write([]byte{0x80})
	for d.nx != 56 {
		d.Write([]byte{0x00})
	}
	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], bitLen)
	d.Write(lenBytes[:])

	var out [Size]byte
	for i, hv := range d.h {
		binary.LittleEndian.PutUint32(out[i*4:], hv)
	}
	return out
}

func leftRotate(v uint32, n uint) uint32 { return v<<n | v>>(32-n) }

func (d *Digest) block(block []byte) {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, dv := d.h[0], d.h[1], d.h[2], d.h[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & dv)
			g = i
		case i < 32:
			f = (dv & b) | (^dv & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ dv
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^dv)
			g = (7 * i) % 16
		}
		f = f + a + sineConstants[i] + m[g]
		a = dv
		dv = c
		c = b
		b = b + leftRotate(f, shiftAmounts[i])
	}
	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dv
}

// Sum computes the MD5 digest of data in one call.
func Sum(data []byte) [Size]byte {
	d := New()
	d.Write(data)
	var out [Size]byte
	copy(out[:], d.Sum(nil))
	return out
}
