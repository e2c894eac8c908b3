// Package rc2 implements the RC2 block cipher (64-bit blocks, variable key
// length) from scratch: the PI-table-driven key expansion and the mix/mash
// round structure, plus the reverse mash/mix decryption path. It implements
// cryptoengine/blockcipher.Cipher.
package rc2

import "fmt"

const BlockSize = 8

// piTable is RC2's published 256-entry substitution permutation (RFC 2268),
// used both during key expansion and nowhere else.
var piTable = [256]byte{
	217, 120, 249, 196, 25, 221, 181, 237, 40, 233, 253, 121, 74, 160, 216, 157,
	198, 126, 55, 131, 43, 118, 83, 142, 98, 76, 100, 136, 68, 139, 251, 162,
	23, 154, 89, 245, 135, 179, 79, 19, 97, 69, 109, 141, 9, 129, 125, 50,
	189, 143, 64, 235, 134, 183, 123, 11, 240, 149, 33, 34, 92, 107, 78, 130,
	84, 214, 101, 147, 206, 96, 178, 28, 115, 86, 192, 20, 167, 140, 241, 220,
	18, 117, 202, 31, 59, 190, 228, 209, 66, 61, 212, 48, 163, 60, 182, 38,
	111, 191, 14, 218, 70, 105, 7, 87, 39, 242, 29, 155, 188, 148, 67, 3,
	248, 17, 199, 246, 144, 239, 62, 231, 6, 195, 213, 47, 200, 102, 30, 215,
	8, 232, 234, 222, 128, 82, 238, 247, 132, 170, 114, 172, 53, 77, 106, 42,
	150, 26, 210, 113, 90, 21, 73, 116, 75, 159, 208, 94, 4, 24, 164, 236,
	194, 224, 65, 110, 15, 81, 203, 204, 36, 145, 175, 80, 161, 244, 112, 57,
	153, 124, 58, 133, 35, 184, 180, 122, 252, 2, 54, 91, 37, 85, 151, 49,
	45, 93, 250, 152, 227, 138, 146, 174, 5, 223, 41, 16, 103, 108, 186, 201,
	211, 0, 230, 207, 225, 158, 168, 44, 99, 22, 1, 63, 88, 226, 137, 169,
	13, 56, 52, 27, 171, 51, 255, 176, 187, 72, 12, 95, 185, 177, 205, 46,
	197, 243, 219, 71, 229, 165, 156, 119, 10, 166, 32, 104, 254, 127, 193, 173,
}

func rotl16(v uint16, n uint) uint16 { return v<<n | v>>(16-n) }
func rotr16(v uint16, n uint) uint16 { return v>>n | v<<(16-n) }

// Cipher is an RC2 instance with a precomputed 64-word expanded key.
type Cipher struct {
	k [64]uint16
}

// New expands an RC2 key of 1 to 128 bytes, using the full key length in
// bits as the effective key length (the common case; the RFC's separate
// effective-bit truncation parameter is not exposed here).
func New(key []byte) (*Cipher, error) {
	if len(key) == 0 || len(key) > 128 {
		return nil, fmt.Errorf("rc2: key length must be 1..128 bytes, got %d", len(key))
	}
	return &Cipher{k: expandKey(key)}, nil
}

func expandKey(key []byte) [64]uint16 {
	t := len(key)
	var l [128]byte
	copy(l[:], key)
	for i := t; i < 128; i++ {
		l[i] = piTable[(int(l[i-1])+int(l[i-t]))&0xff]
	}
	l[128-t] = piTable[l[128-t]]
	for i := 127 - t; i >= 0; i-- {
		l[i] = piTable[l[i+1]^l[i+t]]
	}
	var k [64]uint16
	for i := 0; i < 64; i++ {
		k[i] = uint16(l[2*i]) | uint16(l[2*i+1])<<8
	}
	return k
}

func words(block []byte) [4]uint16 {
	var r [4]uint16
	for i := 0; i < 4; i++ {
		r[i] = uint16(block[2*i]) | uint16(block[2*i+1])<<8
	}
	return r
}

func bytesFrom(r [4]uint16) []byte {
	out := make([]byte, 8)
	for i := 0; i < 4; i++ {
		out[2*i] = byte(r[i])
		out[2*i+1] = byte(r[i] >> 8)
	}
	return out
}

func (c *Cipher) mix(r *[4]uint16, j *int) {
	r[0] = rotl16(r[0]+(r[1]&^r[3])+(r[2]&r[3])+c.k[*j], 1)
	*j++
	r[1] = rotl16(r[1]+(r[2]&^r[0])+(r[3]&r[0])+c.k[*j], 2)
	*j++
	r[2] = rotl16(r[2]+(r[3]&^r[1])+(r[0]&r[1])+c.k[*j], 3)
	*j++
	r[3] = rotl16(r[3]+(r[0]&^r[2])+(r[1]&r[2])+c.k[*j], 5)
	*j++
}

func (c *Cipher) rMix(r *[4]uint16, j *int) {
	r[3] = rotr16(r[3], 5) - (r[0]&^r[2]) - (r[1]&r[2]) - c.k[*j]
	*j--
	r[2] = rotr16(r[2], 3) - (r[3]&^r[1]) - (r[0]&r[1]) - c.k[*j]
	*j--
	r[1] = rotr16(r[1], 2) - (r[2]&^r[0]) - (r[3]&r[0]) - c.k[*j]
	*j--
	r[0] = rotr16(r[0], 1) - (r[1]&^r[3]) - (r[2]&r[3]) - c.k[*j]
	*j--
}

func mash(r *[4]uint16, k [64]uint16) {
	r[0] += k[r[3]&63]
	r[1] += k[r[0]&63]
	r[2] += k[r[1]&63]
	r[3] += k[r[2]&63]
}

func rMash(r *[4]uint16, k [64]uint16) {
	r[3] -= k[r[2]&63]
	r[2] -= k[r[1]&63]
	r[1] -= k[r[0]&63]
	r[0] -= k[r[3]&63]
}

// BlockSize implements blockcipher.Cipher.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt implements blockcipher.Cipher: 5 mix rounds, a mash, 6 mix rounds,
// a mash, 5 mix rounds (16 mix rounds total, consuming all 64 key words).
func (c *Cipher) Encrypt(dst, src []byte) {
	r := words(src)
	j := 0
	for i := 0; i < 5; i++ {
		c.mix(&r, &j)
	}
	mash(&r, c.k)
	for i := 0; i < 6; i++ {
		c.mix(&r, &j)
	}
	mash(&r, c.k)
	for i := 0; i < 5; i++ {
		c.mix(&r, &j)
	}
	copy(dst, bytesFrom(r))
}

// Decrypt reverses Encrypt: 5 r-mix rounds, an r-mash, 6 r-mix rounds, an
// r-mash, 5 r-mix rounds, walking the key-word index backward from 63.
func (c *Cipher) Decrypt(dst, src []byte) {
	r := words(src)
	j := 63
	for i := 0; i < 5; i++ {
		c.rMix(&r, &j)
	}
	rMash(&r, c.k)
	for i := 0; i < 6; i++ {
		c.rMix(&r, &j)
	}
	rMash(&r, c.k)
	for i := 0; i < 5; i++ {
		c.rMix(&r, &j)
	}
	copy(dst, bytesFrom(r))
}
