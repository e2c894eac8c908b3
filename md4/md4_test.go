package md4

import (
	"encoding/hex"
	"testing"
)

func TestEmptyInput(t *testing.T) {
	got := Sum(nil)
	want := "31d6cfe0d16ae931b73c59d7e0c089c0"
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("MD4(\"\") = %x, want %s", got, want)
	}
}

func TestKnownVectors(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"abc", "a448017aaf21d8525fc10ae87aa6729d"},
		{"message digest", "d9130a8164549fe818874806e1c7014b"},
		{"abcdefghijklmnopqrstuvwxyz", "d79e1c308aa5bbcdeea8ed63df412da9"},
	}
	for _, c := range cases {
		got := Sum([]byte(c.in))
		if hex.EncodeToString(got[:]) != c.want {
			t.Fatalf("MD4(%q) = %x, want %s", c.in, got, c.want)
		}
	}
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	data := []byte("some multi-block message that spans more than sixty-four bytes of input data for MD4 buffering")
	d := New()
	for i := 0; i < len(data); i += 11 {
		end := i + 11
		if end > len(data) {
			end = len(data)
		}
		d.Write(data[i:end])
	}
	got := d.Sum(nil)
	want := Sum(data)
	if hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
		t.Fatalf("incremental = %x, one-shot = %x", got, want)
	}
}
