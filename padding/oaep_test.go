package padding

import (
	"bytes"
	"testing"
)

func TestOAEPRoundTrip(t *testing.T) {
	k := 128
	message := []byte("a secret session key")
	label := []byte("")

	seed := OAEPDefaultSeed(newSHA256)
	em, err := OAEPEncode(label, message, k, newSHA256, seed)
	if err != nil {
		t.Fatalf("OAEPEncode: %v", err)
	}
	if len(em) != k {
		t.Fatalf("len(em) = %d, want %d", len(em), k)
	}

	got, err := OAEPDecode(label, em, k, newSHA256)
	if err != nil {
		t.Fatalf("OAEPDecode: %v", err)
	}
	if !bytes.Equal(got, message) {
		t.Fatalf("OAEPDecode = %q, want %q", got, message)
	}
}

func TestOAEPRejectsWrongLabel(t *testing.T) {
	k := 128
	message := []byte("payload")
	seed := OAEPDefaultSeed(newSHA256)
	em, err := OAEPEncode([]byte("context-a"), message, k, newSHA256, seed)
	if err != nil {
		t.Fatalf("OAEPEncode: %v", err)
	}
	if _, err := OAEPDecode([]byte("context-b"), em, k, newSHA256); err == nil {
		t.Fatal("OAEPDecode accepted a mismatched label")
	}
}

func TestOAEPRejectsCorruptedCiphertext(t *testing.T) {
	k := 128
	message := []byte("payload")
	seed := OAEPDefaultSeed(newSHA256)
	em, err := OAEPEncode(nil, message, k, newSHA256, seed)
	if err != nil {
		t.Fatalf("OAEPEncode: %v", err)
	}
	em[k-1] ^= 0xff
	if _, err := OAEPDecode(nil, em, k, newSHA256); err == nil {
		t.Fatal("OAEPDecode accepted corrupted encoded message")
	}
}

func TestOAEPMessageTooLong(t *testing.T) {
	k := 32
	message := make([]byte, k)
	seed := OAEPDefaultSeed(newSHA256)
	if _, err := OAEPEncode(nil, message, k, newSHA256, seed); err == nil {
		t.Fatal("OAEPEncode accepted an oversized message")
	}
}
