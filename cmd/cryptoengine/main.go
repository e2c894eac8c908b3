// Command cryptoengine is the CLI entry point: it drives the library's
// hash, block-cipher, and compliance surfaces from flags rather than
// library calls.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"hash"
	"os"

	"cryptoengine/aes"
	"cryptoengine/blockcipher"
	"cryptoengine/compliance"
	"cryptoengine/md2"
	"cryptoengine/md4"
	"cryptoengine/md5"
	"cryptoengine/padding"
	"cryptoengine/rsa"
	"cryptoengine/rsakey"
	"cryptoengine/sha1"
	"cryptoengine/sha2"
)

func main() {
	hashAlgo := flag.String("hash", "", "compute a digest of -input using the named algorithm (md2, md4, md5, sha1, sha224, sha256, sha384, sha512)")
	input := flag.String("input", "", "input string for -hash or -aes-encrypt/-aes-decrypt")
	aesEncrypt := flag.Bool("aes-encrypt", false, "AES-ECB/PKCS7 encrypt -input with -key (hex; 16, 24 or 32 bytes selects AES-128/192/256), print hex ciphertext")
	aesDecrypt := flag.Bool("aes-decrypt", false, "AES-ECB/PKCS7 decrypt -input (hex) with -key (hex; 16, 24 or 32 bytes selects AES-128/192/256), print plaintext")
	key := flag.String("key", "", "hex-encoded key for -aes-encrypt/-aes-decrypt")
	rsaEncrypt := flag.Bool("rsa-encrypt", false, "RSA-OAEP-SHA256 encrypt -input with the PUBLIC KEY PEM at -key-file, print hex ciphertext")
	rsaDecrypt := flag.Bool("rsa-decrypt", false, "RSA-OAEP-SHA256 decrypt -input (hex) with the PRIVATE KEY PEM at -key-file, print plaintext")
	keyFile := flag.String("key-file", "", "path to a PEM key file for -rsa-encrypt/-rsa-decrypt")
	runCompliance := flag.Bool("compliance", false, "run the known-answer test suite and print a pass/fail report")

	flag.Parse()

	switch {
	case *hashAlgo != "":
		if err := runHash(*hashAlgo, *input); err != nil {
			fmt.Fprintln(os.Stderr, "cryptoengine:", err)
			os.Exit(1)
		}
	case *aesEncrypt:
		if err := runAESEncrypt(*input, *key); err != nil {
			fmt.Fprintln(os.Stderr, "cryptoengine:", err)
			os.Exit(1)
		}
	case *aesDecrypt:
		if err := runAESDecrypt(*input, *key); err != nil {
			fmt.Fprintln(os.Stderr, "cryptoengine:", err)
			os.Exit(1)
		}
	case *rsaEncrypt:
		if err := runRSAEncrypt(*input, *keyFile); err != nil {
			fmt.Fprintln(os.Stderr, "cryptoengine:", err)
			os.Exit(1)
		}
	case *rsaDecrypt:
		if err := runRSADecrypt(*input, *keyFile); err != nil {
			fmt.Fprintln(os.Stderr, "cryptoengine:", err)
			os.Exit(1)
		}
	case *runCompliance:
		report := compliance.RunKnownAnswerTests()
		fmt.Print(compliance.Format(report))
		if !report.Passed() {
			os.Exit(1)
		}
	default:
		printUsage()
	}
}

func runHash(algo, input string) error {
	data := []byte(input)
	var digest []byte
	switch algo {
	case "md2":
		sum := md2.Sum(data)
		digest = sum[:]
	case "md4":
		sum := md4.Sum(data)
		digest = sum[:]
	case "md5":
		sum := md5.Sum(data)
		digest = sum[:]
	case "sha1":
		sum := sha1.Sum(data)
		digest = sum[:]
	case "sha224":
		sum := sha2.Sum224(data)
		digest = sum[:]
	case "sha256":
		sum := sha2.Sum256(data)
		digest = sum[:]
	case "sha384":
		sum := sha2.Sum384(data)
		digest = sum[:]
	case "sha512":
		sum := sha2.Sum512(data)
		digest = sum[:]
	default:
		return fmt.Errorf("unknown hash algorithm %q", algo)
	}
	fmt.Println(hex.EncodeToString(digest))
	return nil
}

func runAESEncrypt(input, keyHex string) error {
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return fmt.Errorf("decoding -key: %w", err)
	}
	c, err := aes.New(keyBytes)
	if err != nil {
		return err
	}
	var ciphertext bytes.Buffer
	err = blockcipher.Encrypt(c, blockcipher.ECB{}, padding.PKCS7{}, []byte(input), func(b []byte) {
		ciphertext.Write(b)
	})
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(ciphertext.Bytes()))
	return nil
}

func runAESDecrypt(inputHex, keyHex string) error {
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return fmt.Errorf("decoding -key: %w", err)
	}
	ciphertext, err := hex.DecodeString(inputHex)
	if err != nil {
		return fmt.Errorf("decoding -input: %w", err)
	}
	c, err := aes.New(keyBytes)
	if err != nil {
		return err
	}
	var plaintext bytes.Buffer
	err = blockcipher.Decrypt(c, blockcipher.ECB{}, padding.PKCS7{}, ciphertext, func(b []byte) {
		plaintext.Write(b)
	})
	if err != nil {
		return err
	}
	fmt.Println(plaintext.String())
	return nil
}

func newSHA256() hash.Hash { return sha2.New256() }

func runRSAEncrypt(input, keyFile string) error {
	text, err := os.ReadFile(keyFile)
	if err != nil {
		return err
	}
	pub, err := rsakey.ParsePublicKeyPEM(string(text))
	if err != nil {
		return err
	}
	seed := padding.OAEPDefaultSeed(newSHA256)
	ciphertext, err := rsa.EncryptMessageOAEP(pub, nil, []byte(input), newSHA256, seed)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(ciphertext))
	return nil
}

func runRSADecrypt(inputHex, keyFile string) error {
	text, err := os.ReadFile(keyFile)
	if err != nil {
		return err
	}
	priv, err := rsakey.ParsePrivateKeyPEM(string(text))
	if err != nil {
		return err
	}
	ciphertext, err := hex.DecodeString(inputHex)
	if err != nil {
		return fmt.Errorf("decoding -input: %w", err)
	}
	plaintext, err := rsa.DecryptMessageOAEP(priv, nil, ciphertext, newSHA256)
	if err != nil {
		return err
	}
	fmt.Println(string(plaintext))
	return nil
}

func printUsage() {
	fmt.Println(`cryptoengine - from-scratch cryptographic primitives

Usage:
  cryptoengine -hash <algo> -input <text>
  cryptoengine -aes-encrypt -input <text> -key <hex>
  cryptoengine -aes-decrypt -input <hex> -key <hex>
  cryptoengine -rsa-encrypt -input <text> -key-file <public.pem>
  cryptoengine -rsa-decrypt -input <hex> -key-file <private.pem>
  cryptoengine -compliance

Hash algorithms: md2, md4, md5, sha1, sha224, sha256, sha384, sha512`)
}
