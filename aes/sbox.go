package aes

import "cryptoengine/gf256"

// RoundConstants is the classic Rijndael RCON byte sequence: RoundConstants[0]
// is unused (kept as 0 so the key schedule can index by round number
// directly), RoundConstants[1]=x^0=1, and each subsequent entry doubles the
// previous one in GF(2^8).
var RoundConstants = computeRoundConstants()

func computeRoundConstants() [11]byte {
	var rc [11]byte
	rc[1] = 1
	for i := 2; i < len(rc); i++ {
		rc[i] = gf256.Mul2(rc[i-1])
	}
	return rc
}

// forwardSBox and inverseSBox are built once at package init from the
// GF(2^8) multiplicative group iterator: for each (n, n^-1) pair, forward[n]
// is the affine transform of n^-1, and inverse is the permutation inverse.
// 0 maps to 0x63 by the AES convention that 0's inverse is taken to be 0.
var forwardSBox, inverseSBox = buildSBox()

func affine(inv byte) byte {
	r := inv
	r ^= rol(inv, 1)
	r ^= rol(inv, 2)
	r ^= rol(inv, 3)
	r ^= rol(inv, 4)
	r ^= 0x63
	return r
}

func rol(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}

func buildSBox() (fwd, inv [256]byte) {
	fwd[0] = 0x63
	inv[0x63] = 0
	gf256.Iterate(func(pr gf256.Pair) bool {
		s := affine(pr.Q)
		fwd[pr.P] = s
		inv[s] = pr.P
		return true
	})
	return fwd, inv
}

// SBox returns the forward AES S-box value for b.
func SBox(b byte) byte { return forwardSBox[b] }

// InverseSBox returns the inverse AES S-box value for b.
func InverseSBox(b byte) byte { return inverseSBox[b] }
