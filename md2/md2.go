// Package md2 implements MD2 (RFC 1319) from scratch: a byte-oriented
// Merkle-Damgård construction over 16-byte blocks driven by the fixed
// 256-entry S-table from RFC 1319 Appendix A, with an auxiliary running
// checksum appended as a final block before compression.
package md2

const (
	Size      = 16
	BlockSize = 16
)

// sTable is the RFC 1319 Appendix A permutation of 0..255 ("derived from
// the digits of pi"), transcribed verbatim so this implementation agrees
// with any other conforming MD2.
var sTable = [256]byte{
	41, 46, 67, 201, 162, 216, 124, 1, 61, 54, 84, 161, 236, 240, 6, 19,
	98, 167, 5, 243, 192, 199, 115, 140, 152, 147, 43, 217, 188, 76, 130, 202,
	30, 155, 87, 60, 253, 212, 224, 22, 103, 66, 111, 24, 138, 23, 229, 18,
	190, 78, 196, 214, 218, 158, 222, 73, 160, 251, 245, 142, 187, 47, 238, 122,
	169, 104, 121, 145, 21, 178, 7, 63, 148, 194, 16, 137, 11, 34, 95, 33,
	128, 127, 93, 154, 90, 144, 50, 39, 53, 62, 204, 231, 191, 247, 151, 3,
	255, 25, 48, 179, 72, 165, 181, 209, 215, 94, 146, 42, 172, 86, 170, 198,
	79, 184, 56, 210, 150, 164, 125, 182, 118, 252, 107, 226, 156, 116, 4, 241,
	69, 157, 112, 89, 100, 113, 135, 32, 134, 91, 207, 101, 230, 45, 168, 2,
	27, 96, 37, 173, 174, 176, 185, 246, 28, 70, 97, 105, 52, 64, 126, 15,
	85, 71, 163, 35, 221, 81, 175, 58, 195, 92, 249, 206, 186, 197, 234, 38,
	44, 83, 13, 110, 133, 40, 132, 9, 211, 223, 205, 244, 65, 129, 77, 82,
	106, 220, 55, 200, 108, 193, 171, 250, 36, 225, 123, 8, 12, 189, 177, 74,
	120, 136, 149, 139, 227, 99, 232, 109, 233, 203, 213, 254, 59, 0, 29, 57,
	242, 239, 183, 14, 102, 88, 208, 228, 166, 119, 114, 248, 235, 117, 75, 10,
	49, 68, 80, 180, 143, 237, 31, 26, 219, 153, 141, 51, 159, 17, 131, 20,
}

// Digest is an incremental MD2 state. It implements hash.Hash.
type Digest struct {
	state    [48]byte
	checksum [16]byte
	buf      [BlockSize]byte
	nx       int
}

func New() *Digest {
	d := &Digest{}
	d.Reset()
	return d
}

func (d *Digest) Reset() {
	d.state = [48]byte{}
	d.checksum = [16]byte{}
	d.nx = 0
}

func (d *Digest) Size() int      { return Size }
func (d *Digest) BlockSize() int { return BlockSize }

func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
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
	pad := BlockSize - d.nx
	padding := make([]byte, pad)
	for i := range padding {
		padding[i] = byte(pad)
	}
	d.Write(padding)

	d.block(d.checksum[:])

	var out [Size]byte
	copy(out[:], d.state[:16])
	return out
}

// block absorbs one 16-byte block: updates the running checksum and runs
// the 18-round compression over the 48-byte state.
func (d *Digest) block(block []byte) {
	for i := 0; i < 16; i++ {
		d.state[16+i] = block[i]
		d.state[32+i] = d.state[16+i] ^ d.state[i]
	}

	t := byte(0)
	for j := 0; j < 18; j++ {
		for k := 0; k < 48; k++ {
			d.state[k] ^= sTable[t]
			t = d.state[k]
		}
		t = t + byte(j)
	}

	l := d.checksum[15]
	for i := 0; i < 16; i++ {
		l = d.checksum[i] ^ sTable[block[i]^l]
		d.checksum[i] = l
	}
}

// Sum computes the MD2 digest of data in one call.
func Sum(data []byte) [Size]byte {
	d := New()
	d.Write(data)
	var out [Size]byte
	copy(out[:], d.Sum(nil))
	return out
}
