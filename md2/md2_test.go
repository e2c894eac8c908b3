package md2

import (
	"encoding/hex"
	"testing"
)

func TestSTableIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range sTable {
		if seen[v] {
			t.Fatalf("sTable is not a permutation: %d repeats", v)
		}
		seen[v] = true
	}
}

// TestKnownAnswers checks against the RFC 1319 Appendix A.5 test suite.
func TestKnownAnswers(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "8350e5a3e24c153df2275c9f80692773"},
		{"a", "32ec01ec4a6dac72c0ab96fb34c0b5d1"},
		{"abc", "da853b0d3f88d99b30283a69e6ded6bb"},
		{"message digest", "ab4f496bfb2a530b219ff33031fe06b0"},
		{"abcdefghijklmnopqrstuvwxyz", "4e8ddff3650292ab5a4108c3aa47940b"},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "da33def2a42df13975352846c30338cd"},
		{"12345678901234567890123456789012345678901234567890123456789012345678901234567890", "d5976f79d83d3a0dc9806c3c66f3efd8"},
	}
	for _, c := range cases {
		got := Sum([]byte(c.input))
		want, err := hex.DecodeString(c.want)
		if err != nil {
			t.Fatalf("bad test vector %q: %v", c.want, err)
		}
		if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
			t.Fatalf("MD2(%q) = %x, want %s", c.input, got, c.want)
		}
	}
}

func TestEmptyInputIsDeterministic(t *testing.T) {
	a := Sum(nil)
	b := Sum(nil)
	if a != b {
		t.Fatal("MD2(\"\") is not deterministic")
	}
}

func TestDiffersOnOneBitChange(t *testing.T) {
	a := Sum([]byte("the quick brown fox"))
	b := Sum([]byte("the quick brown fnx"))
	if a == b {
		t.Fatal("single-byte change produced identical digest")
	}
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	data := []byte("a message that spans more than one sixteen-byte MD2 block of input")
	d := New()
	for i := 0; i < len(data); i += 5 {
		end := i + 5
		if end > len(data) {
			end = len(data)
		}
		d.Write(data[i:end])
	}
	got := d.Sum(nil)
	want := Sum(data)
	if string(got) != string(want[:]) {
		t.Fatalf("incremental = %x, one-shot = %x", got, want)
	}
}
