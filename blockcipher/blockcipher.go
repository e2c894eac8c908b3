// Package blockcipher drives an arbitrary block cipher through a mode of
// operation and a padding scheme, streaming input as fixed-size blocks and
// emitting output bytes through a caller-supplied sink. The three concerns
// (cipher, mode, padding) are orthogonal capability contracts the driver
// consumes, not a class hierarchy: a tagged struct implementing the right
// methods works for any of the three.
package blockcipher

import "fmt"

// Cipher encrypts/decrypts single fixed-size blocks. BlockSize reports that
// fixed size in bytes; Encrypt/Decrypt operate on slices of exactly that
// length.
type Cipher interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// Mode stitches single-block cipher operations into a whole-message
// operation (ECB, CBC, ...). Implementations may hold chaining state; the
// driver calls them once per block, in order.
type Mode interface {
	EncryptBlock(c Cipher, block []byte) []byte
	DecryptBlock(c Cipher, block []byte) []byte
}

// Padding pads a partial final block (len < blockSize) up to exactly
// blockSize bytes, and reverses that on decrypt.
type Padding interface {
	Pad(partial []byte, blockSize int) []byte
	Unpad(block []byte) ([]byte, error)
}

// Sink receives output bytes as the driver produces them, one block (or, for
// the final decrypted block, one unpadded chunk) at a time.
type Sink func(block []byte)

// Encrypt splits input into cipher.BlockSize()-byte chunks, encrypts each
// full chunk through mode and emits it via sink, then pads the (possibly
// empty) remainder to exactly one block and encrypts+emits that too. Exactly
// one padded block is always appended, even when the input is an exact
// multiple of the block size.
func Encrypt(c Cipher, m Mode, p Padding, input []byte, sink Sink) error {
	n := c.BlockSize()
	if n <= 0 {
		return fmt.Errorf("blockcipher: invalid block size %d", n)
	}
	i := 0
	for ; i+n <= len(input); i += n {
		sink(m.EncryptBlock(c, input[i:i+n]))
	}
	padded := p.Pad(input[i:], n)
	if len(padded) != n {
		return fmt.Errorf("blockcipher: padding produced %d bytes, want %d", len(padded), n)
	}
	sink(m.EncryptBlock(c, padded))
	return nil
}

// Decrypt requires len(input) to be a positive multiple of the block size.
// It decrypts every block, emitting all but the final block directly; the
// final block has its padding stripped before being emitted.
func Decrypt(c Cipher, m Mode, p Padding, input []byte, sink Sink) error {
	n := c.BlockSize()
	if n <= 0 {
		return fmt.Errorf("blockcipher: invalid block size %d", n)
	}
	if len(input) == 0 || len(input)%n != 0 {
		return fmt.Errorf("blockcipher: ciphertext length %d is not a positive multiple of block size %d", len(input), n)
	}
	numBlocks := len(input) / n
	for i := 0; i < numBlocks-1; i++ {
		sink(m.DecryptBlock(c, input[i*n:(i+1)*n]))
	}
	last := m.DecryptBlock(c, input[(numBlocks-1)*n:])
	info, err := p.Unpad(last)
	if err != nil {
		return err
	}
	sink(info)
	return nil
}
