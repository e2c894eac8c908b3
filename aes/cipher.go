// Package aes implements AES-128/192/256 from scratch: the GF(2^8)-based
// state transforms, the Rijndael key schedule, and S-box construction. It
// implements cryptoengine/blockcipher.Cipher so it can be driven through the
// shared mode/padding framework.
package aes

import (
	"fmt"

	"cryptoengine/gf256"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// KeySize enumerates the three admissible AES key lengths in bytes.
type KeySize int

const (
	Key128 KeySize = 16
	Key192 KeySize = 24
	Key256 KeySize = 32
)

func (k KeySize) rounds() (int, error) {
	switch k {
	case Key128:
		return 10, nil
	case Key192:
		return 12, nil
	case Key256:
		return 14, nil
	default:
		return 0, fmt.Errorf("aes: unsupported key length %d bytes", k)
	}
}

// Cipher is an AES instance with a precomputed, immutable round-key schedule.
type Cipher struct {
	rounds    int
	roundKeys [][BlockSize]byte // length rounds+1
}

// New builds an AES cipher from a 16, 24, or 32-byte key, expanding the full
// round-key schedule once at construction time.
func New(key []byte) (*Cipher, error) {
	rounds, err := KeySize(len(key)).rounds()
	if err != nil {
		return nil, err
	}
	return &Cipher{
		rounds:    rounds,
		roundKeys: expandKey(key, rounds),
	}, nil
}

// BlockSize implements blockcipher.Cipher.
func (c *Cipher) BlockSize() int { return BlockSize }

// EncryptBlock encrypts one 16-byte block: it returns a new 16-byte array,
// leaving src untouched.
func (c *Cipher) EncryptBlock(src [BlockSize]byte) [BlockSize]byte {
	state := src
	addRoundKey(&state, c.roundKeys[0])
	for r := 1; r < c.rounds; r++ {
		subBytes(&state, forwardSBox)
		shiftRowsForward(&state)
		mixColumns(&state)
		addRoundKey(&state, c.roundKeys[r])
	}
	subBytes(&state, forwardSBox)
	shiftRowsForward(&state)
	addRoundKey(&state, c.roundKeys[c.rounds])
	return state
}

// DecryptBlock reverses EncryptBlock.
func (c *Cipher) DecryptBlock(src [BlockSize]byte) [BlockSize]byte {
	state := src
	addRoundKey(&state, c.roundKeys[c.rounds])
	for r := c.rounds - 1; r >= 1; r-- {
		shiftRowsInverse(&state)
		subBytes(&state, inverseSBox)
		addRoundKey(&state, c.roundKeys[r])
		inverseMixColumns(&state)
	}
	shiftRowsInverse(&state)
	subBytes(&state, inverseSBox)
	addRoundKey(&state, c.roundKeys[0])
	return state
}

// Encrypt implements blockcipher.Cipher over exactly one 16-byte block.
func (c *Cipher) Encrypt(dst, src []byte) {
	var in [BlockSize]byte
	copy(in[:], src)
	out := c.EncryptBlock(in)
	copy(dst, out[:])
}

// Decrypt implements blockcipher.Cipher over exactly one 16-byte block.
func (c *Cipher) Decrypt(dst, src []byte) {
	var in [BlockSize]byte
	copy(in[:], src)
	out := c.DecryptBlock(in)
	copy(dst, out[:])
}

func addRoundKey(state *[BlockSize]byte, key [BlockSize]byte) {
	for i := range state {
		state[i] ^= key[i]
	}
}

func subBytes(state *[BlockSize]byte, box [256]byte) {
	for i := range state {
		state[i] = box[state[i]]
	}
}

// at returns the column-major index for row r, column c.
func at(r, c int) int { return r + 4*c }

func shiftRowsForward(state *[BlockSize]byte) {
	shiftRow(state, 1, 1)
	shiftRow(state, 2, 2)
	shiftRow(state, 3, 3)
}

func shiftRowsInverse(state *[BlockSize]byte) {
	shiftRow(state, 1, -1)
	shiftRow(state, 2, -2)
	shiftRow(state, 3, -3)
}

func shiftRow(state *[BlockSize]byte, row int, amount int) {
	var tmp [4]byte
	for c := 0; c < 4; c++ {
		tmp[c] = state[at(row, ((c+amount)%4+4)%4)]
	}
	for c := 0; c < 4; c++ {
		state[at(row, c)] = tmp[c]
	}
}

func mixColumns(state *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		c0, c1, c2, c3 := state[at(0, c)], state[at(1, c)], state[at(2, c)], state[at(3, c)]
		state[at(0, c)] = gf256.Mul2(c0) ^ gf256.Mul3(c1) ^ c2 ^ c3
		state[at(1, c)] = c0 ^ gf256.Mul2(c1) ^ gf256.Mul3(c2) ^ c3
		state[at(2, c)] = c0 ^ c1 ^ gf256.Mul2(c2) ^ gf256.Mul3(c3)
		state[at(3, c)] = gf256.Mul3(c0) ^ c1 ^ c2 ^ gf256.Mul2(c3)
	}
}

func inverseMixColumns(state *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		c0, c1, c2, c3 := state[at(0, c)], state[at(1, c)], state[at(2, c)], state[at(3, c)]
		state[at(0, c)] = gf256.Mul(14, c0) ^ gf256.Mul(11, c1) ^ gf256.Mul(13, c2) ^ gf256.Mul(9, c3)
		state[at(1, c)] = gf256.Mul(9, c0) ^ gf256.Mul(14, c1) ^ gf256.Mul(11, c2) ^ gf256.Mul(13, c3)
		state[at(2, c)] = gf256.Mul(13, c0) ^ gf256.Mul(9, c1) ^ gf256.Mul(14, c2) ^ gf256.Mul(11, c3)
		state[at(3, c)] = gf256.Mul(11, c0) ^ gf256.Mul(13, c1) ^ gf256.Mul(9, c2) ^ gf256.Mul(14, c3)
	}
}

// MixColumns exposes the forward MixColumns transform on a raw 4-byte column,
// for direct testing against published column vectors.
func MixColumns(col [4]byte) [4]byte {
	var state [BlockSize]byte
	copy(state[0:4], col[:])
	mixColumns(&state)
	var out [4]byte
	copy(out[:], state[0:4])
	return out
}

// InverseMixColumns exposes the inverse MixColumns transform on a raw 4-byte
// column.
func InverseMixColumns(col [4]byte) [4]byte {
	var state [BlockSize]byte
	copy(state[0:4], col[:])
	inverseMixColumns(&state)
	var out [4]byte
	copy(out[:], state[0:4])
	return out
}
