package padding

import (
	"bytes"
	"testing"
)

func TestBitPaddingRoundTrip(t *testing.T) {
	cases := [][]byte{{}, {0x01}, {0x01, 0x02, 0x03}, {0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}}
	var p BitPadding
	for _, partial := range cases {
		padded := p.Pad(partial, 8)
		if len(padded) != 8 {
			t.Fatalf("Pad(%v) len = %d, want 8", partial, len(padded))
		}
		got, err := p.Unpad(padded)
		if err != nil {
			t.Fatalf("Unpad: %v", err)
		}
		if !bytes.Equal(got, partial) {
			t.Fatalf("Unpad(Pad(%v)) = %v", partial, got)
		}
	}
}

func TestPKCS7FullBlockWhenExactMultiple(t *testing.T) {
	var p PKCS7
	padded := p.Pad(nil, 8)
	want := []byte{8, 8, 8, 8, 8, 8, 8, 8}
	if !bytes.Equal(padded, want) {
		t.Fatalf("Pad(nil, 8) = %v, want %v", padded, want)
	}
}

func TestPKCS7RoundTrip(t *testing.T) {
	cases := [][]byte{{}, {0xaa}, {0xaa, 0xbb, 0xcc}}
	var p PKCS7
	for _, partial := range cases {
		padded := p.Pad(partial, 8)
		got, err := p.Unpad(padded)
		if err != nil {
			t.Fatalf("Unpad: %v", err)
		}
		if !bytes.Equal(got, partial) {
			t.Fatalf("Unpad(Pad(%v)) = %v", partial, got)
		}
	}
}

func TestPKCS7RejectsInvalidPadding(t *testing.T) {
	var p PKCS7
	bad := []byte{1, 2, 3, 4, 5, 6, 7, 9}
	if _, err := p.Unpad(bad); err == nil {
		t.Fatal("Unpad accepted inconsistent padding bytes")
	}
}

func TestBitPaddingRejectsMissingMarker(t *testing.T) {
	var p BitPadding
	bad := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := p.Unpad(bad); err == nil {
		t.Fatal("Unpad accepted a block with no 0x80 marker")
	}
}
