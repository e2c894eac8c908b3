package sha2

import (
	"encoding/hex"
	"testing"
)

func TestSHA256Empty(t *testing.T) {
	got := Sum256(nil)
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("SHA-256(\"\") = %x, want %s", got, want)
	}
}

func TestSHA224DiffersFrom256(t *testing.T) {
	h256 := Sum256([]byte("abc"))
	h224 := Sum224([]byte("abc"))
	if len(h224) != Size224 {
		t.Fatalf("len(SHA-224) = %d, want %d", len(h224), Size224)
	}
	if hex.EncodeToString(h224[:]) == hex.EncodeToString(h256[:Size224]) {
		t.Fatal("SHA-224 must not equal a truncated SHA-256")
	}
}

func TestSHA512Empty(t *testing.T) {
	got := Sum512(nil)
	want := "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("SHA-512(\"\") = %x, want %s", got, want)
	}
}

func TestSHA384Size(t *testing.T) {
	got := Sum384([]byte("abc"))
	if len(got) != Size384 {
		t.Fatalf("len(SHA-384) = %d, want %d", len(got), Size384)
	}
}

func TestIncrementalMatchesOneShot256(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i)
	}
	d := New256()
	for i := 0; i < len(data); i += 17 {
		end := i + 17
		if end > len(data) {
			end = len(data)
		}
		d.Write(data[i:end])
	}
	got := d.Sum(nil)
	want := Sum256(data)
	if hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
		t.Fatalf("incremental = %x, one-shot = %x", got, want)
	}
}

func TestIncrementalMatchesOneShot512(t *testing.T) {
	data := make([]byte, 400)
	for i := range data {
		data[i] = byte(i * 3)
	}
	d := New512()
	for i := 0; i < len(data); i += 23 {
		end := i + 23
		if end > len(data) {
			end = len(data)
		}
		d.Write(data[i:end])
	}
	got := d.Sum(nil)
	want := Sum512(data)
	if hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
		t.Fatalf("incremental = %x, one-shot = %x", got, want)
	}
}
