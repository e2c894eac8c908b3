package rsakey

import (
	"fmt"

	"cryptoengine/asn1"
	"cryptoengine/pem"
)

// PEM labels for the two key shapes this package understands.
const (
	PrivateKeyLabel = "PRIVATE KEY"
	PublicKeyLabel  = "PUBLIC KEY"
)

// ParsePrivateKeyPEM decodes a "PRIVATE KEY" PEM envelope and extracts the
// RSA private key from the PKCS#8 PrivateKeyInfo it carries.
func ParsePrivateKeyPEM(text string) (PrivateKey, error) {
	block, err := pem.Decode(text)
	if err != nil {
		return PrivateKey{}, err
	}
	if block.Label != PrivateKeyLabel {
		return PrivateKey{}, fmt.Errorf("rsakey: expected %q PEM label, got %q", PrivateKeyLabel, block.Label)
	}
	v, err := asn1.Decode(block.Payload)
	if err != nil {
		return PrivateKey{}, err
	}
	return ParsePrivateKey(v)
}

// ParsePublicKeyPEM decodes a "PUBLIC KEY" PEM envelope and extracts the RSA
// public key from the SubjectPublicKeyInfo it carries.
func ParsePublicKeyPEM(text string) (PublicKey, error) {
	block, err := pem.Decode(text)
	if err != nil {
		return PublicKey{}, err
	}
	if block.Label != PublicKeyLabel {
		return PublicKey{}, fmt.Errorf("rsakey: expected %q PEM label, got %q", PublicKeyLabel, block.Label)
	}
	v, err := asn1.Decode(block.Payload)
	if err != nil {
		return PublicKey{}, err
	}
	return ParsePublicKey(v)
}
