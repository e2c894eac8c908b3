// Package modexp implements modular multiplication and exponentiation over
// biguint.Uint: MulMod via double-and-add, PowMod via square-and-multiply.
// These are the only CPU-hot operations in the engine and dominate RSA
// runtime.
package modexp

import "cryptoengine/biguint"

// MulMod returns (a*b) mod m, computed by double-and-add on b: scan b's bits
// from least to most significant, accumulating a into the result whenever the
// bit is set and doubling a (mod m) each step.
func MulMod(a, b, m biguint.Uint) biguint.Uint {
	r := biguint.Zero
	a = biguint.Rem(a, m)
	for i := 0; i < b.BitsUsed(); i++ {
		if b.IsSet(i) {
			r = biguint.Rem(biguint.Add(r, a), m)
		}
		a = biguint.Rem(biguint.Shl(a, 1), m)
	}
	return r
}

// PowMod returns a^p mod m via square-and-multiply, scanning p's bits from
// least to most significant.
func PowMod(a, p, m biguint.Uint) biguint.Uint {
	one := biguint.FromUint64(1)
	if biguint.Cmp(m, one) == 0 {
		return biguint.Zero
	}
	result := one
	base := biguint.Rem(a, m)
	for i := 0; i < p.BitsUsed(); i++ {
		if p.IsSet(i) {
			result = MulMod(result, base, m)
		}
		base = MulMod(base, base, m)
	}
	return result
}
