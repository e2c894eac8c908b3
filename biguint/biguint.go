// Package biguint implements an arbitrary-precision non-negative integer
// from scratch, stored as little-endian limb bytes. It exists so that the
// rest of this module (modexp, rsa) never reaches for math/big: big-integer
// arithmetic is a load-bearing component of the engine, not a convenience
// wrapper around someone else's.
package biguint

import "fmt"

// Uint is a non-negative integer, stored least-significant-byte first.
// The representation is always canonical: no trailing (i.e. high-order)
// zero limb, and the zero value is the empty slice.
type Uint struct {
	limbs []byte
}

// Zero is the additive identity.
var Zero = Uint{}

func canonical(limbs []byte) Uint {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return Uint{limbs: limbs[:n:n]}
}

// FromBigEndian builds a Uint from a big-endian byte slice, stripping
// leading zero bytes.
func FromBigEndian(be []byte) Uint {
	n := len(be)
	limbs := make([]byte, n)
	for i, b := range be {
		limbs[n-1-i] = b
	}
	return canonical(limbs)
}

// FromLittleEndian builds a Uint from a little-endian byte slice, stripping
// trailing (high-order) zero bytes.
func FromLittleEndian(le []byte) Uint {
	limbs := make([]byte, len(le))
	copy(limbs, le)
	return canonical(limbs)
}

// FromUint64 builds a Uint from a native unsigned 64-bit value.
func FromUint64(v uint64) Uint {
	limbs := make([]byte, 8)
	for i := 0; i < 8; i++ {
		limbs[i] = byte(v >> (8 * i))
	}
	return canonical(limbs)
}

// ToBigEndian returns the canonical big-endian serialization; the zero value
// serializes to an empty slice.
func (u Uint) ToBigEndian() []byte {
	n := len(u.limbs)
	out := make([]byte, n)
	for i, b := range u.limbs {
		out[n-1-i] = b
	}
	return out
}

// ToBigEndianPadded is ToBigEndian but left-padded with zero bytes to exactly
// width bytes; it fails (panics) if the value does not fit.
func (u Uint) ToBigEndianPadded(width int) []byte {
	be := u.ToBigEndian()
	if len(be) > width {
		panic(fmt.Sprintf("biguint: value needs %d bytes, width is %d", len(be), width))
	}
	out := make([]byte, width)
	copy(out[width-len(be):], be)
	return out
}

// IsZero reports whether u is the additive identity.
func (u Uint) IsZero() bool {
	return len(u.limbs) == 0
}

// BitsUsed returns floor(log2(n))+1 for n>0, or 0 for n==0.
func (u Uint) BitsUsed() int {
	if len(u.limbs) == 0 {
		return 0
	}
	top := u.limbs[len(u.limbs)-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return 8*(len(u.limbs)-1) + bits
}

// IsSet returns the i-th bit counting from the least-significant end. Bits at
// or beyond BitsUsed are false.
func (u Uint) IsSet(i int) bool {
	if i < 0 {
		return false
	}
	byteIdx := i / 8
	if byteIdx >= len(u.limbs) {
		return false
	}
	return u.limbs[byteIdx]&(1<<uint(i%8)) != 0
}

// Update sets or clears bit i in place. It fails if i falls outside the
// currently allocated width (len(limbs)*8); it does not grow the value.
func (u *Uint) Update(i int, b bool) error {
	byteIdx := i / 8
	if i < 0 || byteIdx >= len(u.limbs) {
		return fmt.Errorf("biguint: bit index %d outside allocated width %d", i, 8*len(u.limbs))
	}
	mask := byte(1) << uint(i%8)
	if b {
		u.limbs[byteIdx] |= mask
	} else {
		u.limbs[byteIdx] &^= mask
	}
	*u = canonical(u.limbs)
	return nil
}

// Cmp orders a and b by magnitude: first by BitsUsed, then lexicographically
// from the most-significant limb down.
func Cmp(a, b Uint) int {
	ab, bb := a.BitsUsed(), b.BitsUsed()
	if ab != bb {
		if ab < bb {
			return -1
		}
		return 1
	}
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns a+b, growing the result by one limb on carry-out.
func Add(a, b Uint) Uint {
	n := len(a.limbs)
	if len(b.limbs) > n {
		n = len(b.limbs)
	}
	out := make([]byte, n+1)
	var carry uint16
	for i := 0; i < n; i++ {
		var av, bv byte
		if i < len(a.limbs) {
			av = a.limbs[i]
		}
		if i < len(b.limbs) {
			bv = b.limbs[i]
		}
		sum := uint16(av) + uint16(bv) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	out[n] = byte(carry)
	return canonical(out)
}

// Sub returns a-b. It panics if b>a: subtraction is only defined over the
// non-negative integers this type represents.
func Sub(a, b Uint) Uint {
	if Cmp(a, b) < 0 {
		panic("biguint: subtraction underflow")
	}
	width := len(a.limbs)
	// a - b == a + (^b + 1), masked to a's width (two's-complement negation
	// of b on a's width, then ordinary carrying addition, discarding any
	// carry out of the top limb).
	inv := make([]byte, width)
	for i := 0; i < width; i++ {
		var bv byte
		if i < len(b.limbs) {
			bv = b.limbs[i]
		}
		inv[i] = ^bv
	}
	negB := canonical(append(inv, 0))
	one := FromUint64(1)
	twosComp := Add(negB, one)
	sum := Add(a, twosComp)
	// Discard limbs beyond a's width: the borrow-free result lives in the
	// low `width` limbs.
	limbs := make([]byte, width)
	copy(limbs, sum.limbs)
	return canonical(limbs)
}

// Shl returns a shifted left by k bits.
func Shl(a Uint, k int) Uint {
	if k <= 0 || a.IsZero() {
		return a
	}
	byteShift := k / 8
	bitShift := uint(k % 8)
	n := len(a.limbs)
	out := make([]byte, n+byteShift+1)
	for i := 0; i < n; i++ {
		var word uint16 = uint16(a.limbs[i]) << bitShift
		out[i+byteShift] |= byte(word)
		out[i+byteShift+1] |= byte(word >> 8)
	}
	return canonical(out)
}

// Shr returns a shifted right by k bits (bits shifted past position 0 are
// discarded, not wrapped or extended).
func Shr(a Uint, k int) Uint {
	if k <= 0 {
		return a
	}
	byteShift := k / 8
	bitShift := uint(k % 8)
	n := len(a.limbs)
	if byteShift >= n {
		return Zero
	}
	out := make([]byte, n-byteShift)
	for i := range out {
		srcIdx := i + byteShift
		var cur uint16 = uint16(a.limbs[srcIdx])
		var next uint16
		if srcIdx+1 < n {
			next = uint16(a.limbs[srcIdx+1])
		}
		combined := cur | (next << 8)
		out[i] = byte(combined >> bitShift)
	}
	return canonical(out)
}

// Rem computes a mod m via the classical shift-and-subtract long division
// remainder. m must be nonzero.
func Rem(a, m Uint) Uint {
	if m.IsZero() {
		panic("biguint: modulo by zero")
	}
	d := a.BitsUsed() - m.BitsUsed()
	if d < 0 {
		return a
	}
	t := Shl(m, d)
	r := a
	for i := d; i >= 0; i-- {
		if Cmp(t, r) <= 0 {
			r = Sub(r, t)
		}
		t = Shr(t, 1)
	}
	return r
}

func (u Uint) String() string {
	return fmt.Sprintf("%x", u.ToBigEndian())
}
