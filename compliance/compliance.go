// Package compliance runs the engine's published test vectors against the
// real implementations and reports pass/fail per algorithm. It also provides
// MonobitRatio, a basic statistical sanity check for cipher output; the
// known-answer run does not call it.
package compliance

import (
	"encoding/hex"
	"fmt"

	"cryptoengine/aes"
	"cryptoengine/md5"
	"cryptoengine/rc4"
	"cryptoengine/sha1"
	"cryptoengine/sha2"
)

// Result is the outcome of one known-answer test.
type Result struct {
	ID       string
	Passed   bool
	Expected string
	Got      string
}

// Report aggregates the results of a full KAT run.
type Report struct {
	Results []Result
}

// Passed reports whether every vector in the report matched.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return len(r.Results) > 0
}

func (r *Report) check(id string, got, want []byte) {
	gotHex := hex.EncodeToString(got)
	wantHex := hex.EncodeToString(want)
	r.Results = append(r.Results, Result{
		ID:       id,
		Passed:   gotHex == wantHex,
		Expected: wantHex,
		Got:      gotHex,
	})
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// RunKnownAnswerTests exercises the published vectors for AES, RC4, MD5,
// SHA-1, and SHA-256/512 against this module's own implementations.
func RunKnownAnswerTests() Report {
	var r Report

	zeroKey := make([]byte, 16)
	aesCipher, err := aes.New(zeroKey)
	if err == nil {
		var block [aes.BlockSize]byte
		copy(block[:], "AAAAAAAAAAAAAAAA")
		out := aesCipher.EncryptBlock(block)
		r.check("AES-128 zero-key", out[:], mustHex("b49cbf19d357e6e1f6845c30fd5b63e3"))
	} else {
		r.Results = append(r.Results, Result{ID: "AES-128 zero-key", Passed: false, Expected: "constructible cipher", Got: err.Error()})
	}

	mixed := aes.MixColumns([4]byte{0xdb, 0x13, 0x53, 0x45})
	r.check("AES MixColumns", mixed[:], mustHex("8e4da1bc"))
	unmixed := aes.InverseMixColumns(mixed)
	r.check("AES InverseMixColumns", unmixed[:], mustHex("db135345"))

	if rc4Cipher, err := rc4.New([]byte("Key")); err == nil {
		r.check("RC4 keystream", rc4Cipher.Stream(10), mustHex("eb9f7781b734ca72a719"))
	} else {
		r.Results = append(r.Results, Result{ID: "RC4 keystream", Passed: false, Expected: "constructible cipher", Got: err.Error()})
	}

	if ciphertext, err := rc4.Encrypt([]byte("Key"), []byte("Plaintext")); err == nil {
		r.check("RC4 ciphertext", ciphertext, mustHex("bbf316e8d940af0ad3"))
	} else {
		r.Results = append(r.Results, Result{ID: "RC4 ciphertext", Passed: false, Expected: "constructible cipher", Got: err.Error()})
	}

	md5Sum := md5.Sum(nil)
	r.check("MD5 empty string", md5Sum[:], mustHex("d41d8cd98f00b204e9800998ecf8427e"))

	md5Sum2 := md5.Sum([]byte("The quick brown fox jumps over the lazy dog"))
	r.check("MD5 pangram", md5Sum2[:], mustHex("9e107d9d372bb6826bd81d3542a419d6"))

	sha1Sum := sha1.Sum([]byte("The quick brown fox jumps over the lazy dog"))
	r.check("SHA-1 pangram", sha1Sum[:], mustHex("2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"))

	sha256Sum := sha2.Sum256(nil)
	r.check("SHA-256 empty string", sha256Sum[:], mustHex("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"))

	sha512Sum := sha2.Sum512(nil)
	r.check("SHA-512 empty string", sha512Sum[:], mustHex("cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"))

	return r
}

// Format renders a report as a human-readable summary, one line per vector.
func Format(r Report) string {
	out := ""
	passed, failed := 0, 0
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
			failed++
		} else {
			passed++
		}
		out += fmt.Sprintf("%-32s %s\n", res.ID, status)
	}
	out += fmt.Sprintf("%d passed, %d failed out of %d\n", passed, failed, len(r.Results))
	return out
}

// MonobitRatio returns the fraction of set bits in data, a coarse statistical
// sanity check for cipher/hash output: a healthy stream should sit close to
// 0.5 and a degenerate one (e.g. all zero) will not.
func MonobitRatio(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	ones := 0
	for _, b := range data {
		for i := 0; i < 8; i++ {
			if (b>>i)&1 == 1 {
				ones++
			}
		}
	}
	return float64(ones) / float64(len(data)*8)
}
