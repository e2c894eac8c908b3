// Package rsakey extracts RSA modulus/exponent material from parsed ASN.1
// values, recognizing the PKCS#8 PrivateKeyInfo and SubjectPublicKeyInfo
// shapes used to carry RSA keys inside PEM envelopes.
package rsakey

import (
	"fmt"

	"cryptoengine/asn1"
	"cryptoengine/biguint"
)

// PublicKey is (n, e): the modulus and public exponent.
type PublicKey struct {
	N biguint.Uint
	E biguint.Uint
}

// PrivateKey holds n and d at the engine level; the other PKCS#1 fields
// (p, q, dP, dQ, qInv) are parsed but not retained, since modular
// exponentiation here only ever uses n and d.
type PrivateKey struct {
	N biguint.Uint
	D biguint.Uint
}

func intField(v asn1.Value) (biguint.Uint, error) {
	b, err := v.Int()
	if err != nil {
		return biguint.Uint{}, err
	}
	return biguint.FromBigEndian(b), nil
}

// ParsePublicKey extracts an RSA public key from a decoded
// SubjectPublicKeyInfo: Sequence{ Sequence{ OID(rsaEncryption), Null },
// BitString(unused=0, payload=RSAPublicKey) } where RSAPublicKey is
// Sequence{ Integer(n), Integer(e) }.
func ParsePublicKey(v asn1.Value) (PublicKey, error) {
	if v.Kind != asn1.TagSequence || len(v.Children) != 2 {
		return PublicKey{}, fmt.Errorf("rsakey: SubjectPublicKeyInfo must be a 2-element SEQUENCE")
	}
	algo := v.Children[0]
	if err := checkRSAAlgorithmIdentifier(algo); err != nil {
		return PublicKey{}, err
	}
	bits := v.Children[1]
	if bits.Kind != asn1.TagBitString {
		return PublicKey{}, fmt.Errorf("rsakey: expected BIT STRING subjectPublicKey")
	}
	inner, err := asn1.Decode(bits.Bytes)
	if err != nil {
		return PublicKey{}, fmt.Errorf("rsakey: decoding RSAPublicKey: %w", err)
	}
	if inner.Kind != asn1.TagSequence || len(inner.Children) != 2 {
		return PublicKey{}, fmt.Errorf("rsakey: RSAPublicKey must be a 2-element SEQUENCE")
	}
	n, err := intField(inner.Children[0])
	if err != nil {
		return PublicKey{}, fmt.Errorf("rsakey: modulus: %w", err)
	}
	e, err := intField(inner.Children[1])
	if err != nil {
		return PublicKey{}, fmt.Errorf("rsakey: exponent: %w", err)
	}
	return PublicKey{N: n, E: e}, nil
}

// ParsePrivateKey extracts an RSA private key from a decoded PKCS#8
// PrivateKeyInfo: Sequence{ Integer(version=0), Sequence{
// OID(rsaEncryption), Null }, OctetString(RSAPrivateKey) } where the inner
// RSAPrivateKey is a 9-element SEQUENCE of Integers (version, n, e, d, p, q,
// dP, dQ, qInv).
func ParsePrivateKey(v asn1.Value) (PrivateKey, error) {
	if v.Kind != asn1.TagSequence || len(v.Children) != 3 {
		return PrivateKey{}, fmt.Errorf("rsakey: PrivateKeyInfo must be a 3-element SEQUENCE")
	}
	version, err := v.Children[0].Int()
	if err != nil {
		return PrivateKey{}, fmt.Errorf("rsakey: version: %w", err)
	}
	if len(version) != 0 && !(len(version) == 1 && version[0] == 0) {
		return PrivateKey{}, fmt.Errorf("rsakey: unsupported PrivateKeyInfo version")
	}
	if err := checkRSAAlgorithmIdentifier(v.Children[1]); err != nil {
		return PrivateKey{}, err
	}
	octets := v.Children[2]
	if octets.Kind != asn1.TagOctetString {
		return PrivateKey{}, fmt.Errorf("rsakey: expected OCTET STRING privateKey")
	}
	inner, err := asn1.Decode(octets.Bytes)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("rsakey: decoding RSAPrivateKey: %w", err)
	}
	if inner.Kind != asn1.TagSequence || len(inner.Children) != 9 {
		return PrivateKey{}, fmt.Errorf("rsakey: RSAPrivateKey must be a 9-element SEQUENCE")
	}
	n, err := intField(inner.Children[1])
	if err != nil {
		return PrivateKey{}, fmt.Errorf("rsakey: modulus: %w", err)
	}
	d, err := intField(inner.Children[3])
	if err != nil {
		return PrivateKey{}, fmt.Errorf("rsakey: private exponent: %w", err)
	}
	return PrivateKey{N: n, D: d}, nil
}

func checkRSAAlgorithmIdentifier(v asn1.Value) error {
	if v.Kind != asn1.TagSequence || len(v.Children) != 2 {
		return fmt.Errorf("rsakey: AlgorithmIdentifier must be a 2-element SEQUENCE")
	}
	if !v.Children[0].ObjectIDEquals(asn1.RSAEncryptionOID) {
		return fmt.Errorf("rsakey: unsupported algorithm OID")
	}
	if v.Children[1].Kind != asn1.TagNull {
		return fmt.Errorf("rsakey: expected NULL algorithm parameters")
	}
	return nil
}
