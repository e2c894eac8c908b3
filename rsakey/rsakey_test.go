package rsakey

import (
	"testing"

	"cryptoengine/asn1"
)

func derLen(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte(n & 0xff)}, b...)
		n >>= 8
	}
	return append([]byte{byte(0x80 | len(b))}, b...)
}

func derTLV(tag byte, content []byte) []byte {
	out := []byte{tag}
	out = append(out, derLen(len(content))...)
	return append(out, content...)
}

func derInt(b byte) []byte { return derTLV(0x02, []byte{b}) }

func algorithmIdentifier() []byte {
	oid := derTLV(0x06, asn1.RSAEncryptionOID)
	null := derTLV(0x05, nil)
	return derTLV(0x30, append(oid, null...))
}

func rsaPublicKeyBody(n, e byte) []byte {
	return derTLV(0x30, append(derInt(n), derInt(e)...))
}

func subjectPublicKeyInfo(n, e byte) []byte {
	algo := algorithmIdentifier()
	pubKeyBody := rsaPublicKeyBody(n, e)
	bitString := derTLV(0x03, append([]byte{0x00}, pubKeyBody...))
	return derTLV(0x30, append(algo, bitString...))
}

func rsaPrivateKeyBody(n, e, d byte) []byte {
	fields := append(derInt(0), derInt(n)...)
	fields = append(fields, derInt(e)...)
	fields = append(fields, derInt(d)...)
	for i := 0; i < 5; i++ {
		fields = append(fields, derInt(1)...)
	}
	return derTLV(0x30, fields)
}

func privateKeyInfo(n, e, d byte) []byte {
	version := derInt(0)
	algo := algorithmIdentifier()
	octets := derTLV(0x04, rsaPrivateKeyBody(n, e, d))
	body := append(version, algo...)
	body = append(body, octets...)
	return derTLV(0x30, body)
}

func TestParsePublicKey(t *testing.T) {
	der := subjectPublicKeyInfo(0x41, 0x03)
	v, err := asn1.Decode(der)
	if err != nil {
		t.Fatalf("asn1.Decode: %v", err)
	}
	pub, err := ParsePublicKey(v)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if pub.N.ToBigEndian()[0] != 0x41 || pub.E.ToBigEndian()[0] != 0x03 {
		t.Fatalf("got n=%x e=%x", pub.N.ToBigEndian(), pub.E.ToBigEndian())
	}
}

func TestParsePrivateKey(t *testing.T) {
	der := privateKeyInfo(0x41, 0x03, 0x17)
	v, err := asn1.Decode(der)
	if err != nil {
		t.Fatalf("asn1.Decode: %v", err)
	}
	priv, err := ParsePrivateKey(v)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	if priv.N.ToBigEndian()[0] != 0x41 || priv.D.ToBigEndian()[0] != 0x17 {
		t.Fatalf("got n=%x d=%x", priv.N.ToBigEndian(), priv.D.ToBigEndian())
	}
}

func TestParsePublicKeyRejectsWrongOID(t *testing.T) {
	oid := derTLV(0x06, []byte{0x01, 0x02, 0x03})
	null := derTLV(0x05, nil)
	algo := derTLV(0x30, append(oid, null...))
	pubKeyBody := rsaPublicKeyBody(0x41, 0x03)
	bitString := derTLV(0x03, append([]byte{0x00}, pubKeyBody...))
	der := derTLV(0x30, append(algo, bitString...))

	v, err := asn1.Decode(der)
	if err != nil {
		t.Fatalf("asn1.Decode: %v", err)
	}
	if _, err := ParsePublicKey(v); err == nil {
		t.Fatal("ParsePublicKey accepted a non-rsaEncryption OID")
	}
}
