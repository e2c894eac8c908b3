package padding

import (
	"bytes"
	"hash"
	"testing"

	"cryptoengine/sha1"
	"cryptoengine/sha2"
)

func newSHA1() hash.Hash   { return sha1.New() }
func newSHA256() hash.Hash { return sha2.New256() }

func TestMGF1LengthAndDeterminism(t *testing.T) {
	seed := []byte("a seed value")
	a := MGF1(seed, 37, newSHA1)
	b := MGF1(seed, 37, newSHA1)
	if len(a) != 37 {
		t.Fatalf("len(MGF1) = %d, want 37", len(a))
	}
	if !bytes.Equal(a, b) {
		t.Fatal("MGF1 is not deterministic for the same seed")
	}
}

func TestMGF1SpansMultipleHashBlocks(t *testing.T) {
	seed := []byte("seed")
	out := MGF1(seed, 100, newSHA256)
	if len(out) != 100 {
		t.Fatalf("len(MGF1) = %d, want 100", len(out))
	}
	first32 := MGF1(seed, 32, newSHA256)
	if !bytes.Equal(out[:32], first32) {
		t.Fatal("MGF1 output must be a prefix-stable stream across requested lengths")
	}
}

func TestMGF1DifferentSeedsDiffer(t *testing.T) {
	a := MGF1([]byte("seed-a"), 20, newSHA1)
	b := MGF1([]byte("seed-b"), 20, newSHA1)
	if bytes.Equal(a, b) {
		t.Fatal("different seeds produced identical MGF1 output")
	}
}
