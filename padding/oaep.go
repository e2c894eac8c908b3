package padding

import (
	"fmt"
	"hash"
)

// FixedSeedFiller is the engine's documented OAEP deficiency: OAEPDefaultSeed
// builds a seed from this constant byte repeated to the hash's output length,
// instead of drawing real entropy. OAEPEncode has no fallback of its own; it
// rejects a seed of the wrong length. Any deployment must supply its own seed
// via OAEPEncode's seed parameter.
const FixedSeedFiller = 0x2a

// OAEPEncode implements RSA-OAEP encoding (PKCS#1 v2.1) for a target encoded
// length of k bytes, using newHash as both the label hash and the MGF1 hash.
// seed must be exactly newHash().Size() bytes; callers that want the
// documented fixed-filler behavior should pass OAEPDefaultSeed(newHash).
func OAEPEncode(label, message []byte, k int, newHash func() hash.Hash, seed []byte) ([]byte, error) {
	h := newHash()
	n := h.Size()
	if len(seed) != n {
		return nil, fmt.Errorf("padding: OAEP seed must be %d bytes, got %d", n, len(seed))
	}
	if len(message) > k-2*n-2 {
		return nil, fmt.Errorf("padding: OAEP message too long for %d-byte modulus", k)
	}

	h.Write(label)
	lHash := h.Sum(nil)

	db := make([]byte, k-n-1)
	copy(db, lHash)
	sep := k - n - 1 - len(message) - 1
	db[sep] = 0x01
	copy(db[sep+1:], message)

	dbMask := MGF1(seed, k-n-1, newHash)
	maskedDB := make([]byte, len(db))
	xorBytes(maskedDB, db, dbMask)

	seedMask := MGF1(maskedDB, n, newHash)
	maskedSeed := make([]byte, n)
	xorBytes(maskedSeed, seed, seedMask)

	em := make([]byte, k)
	copy(em[1:1+n], maskedSeed)
	copy(em[1+n:], maskedDB)
	return em, nil
}

// OAEPDefaultSeed returns a fixed 0x2a-filled seed of the hash's output
// length, for callers that pass it to OAEPEncode in place of real randomness.
func OAEPDefaultSeed(newHash func() hash.Hash) []byte {
	n := newHash().Size()
	seed := make([]byte, n)
	for i := range seed {
		seed[i] = FixedSeedFiller
	}
	return seed
}

// OAEPDecode reverses OAEPEncode, failing on any structural mismatch: wrong
// leading byte, wrong label hash, or a malformed separator.
func OAEPDecode(label, em []byte, k int, newHash func() hash.Hash) ([]byte, error) {
	h := newHash()
	n := h.Size()
	if len(em) != k || k < 2*n+2 {
		return nil, fmt.Errorf("padding: OAEP encoded message has wrong length")
	}

	y := em[0]
	maskedSeed := em[1 : 1+n]
	maskedDB := em[1+n:]

	seedMask := MGF1(maskedDB, n, newHash)
	seed := make([]byte, n)
	xorBytes(seed, maskedSeed, seedMask)

	dbMask := MGF1(seed, k-n-1, newHash)
	db := make([]byte, len(maskedDB))
	xorBytes(db, maskedDB, dbMask)

	h.Write(label)
	lHash := h.Sum(nil)

	lHashGot := db[:n]
	rest := db[n:]

	sepIdx := -1
	for i, b := range rest {
		if b == 0x01 {
			sepIdx = i
			break
		}
		if b != 0x00 {
			break
		}
	}

	var mismatch byte
	if y != 0x00 {
		mismatch = 1
	}
	for i := range lHash {
		if lHash[i] != lHashGot[i] {
			mismatch = 1
		}
	}
	if sepIdx < 0 {
		mismatch = 1
	}
	if mismatch != 0 {
		return nil, fmt.Errorf("padding: OAEP decoding error")
	}

	return rest[sepIdx+1:], nil
}
