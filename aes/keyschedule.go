package aes

// word is a 32-bit key-schedule word, stored as 4 bytes in the order they
// appear in the key material (big-endian within the word).
type word [4]byte

func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

func subWord(w word) word {
	return word{SBox(w[0]), SBox(w[1]), SBox(w[2]), SBox(w[3])}
}

func xorWord(a, b word) word {
	return word{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// expandKey runs the Rijndael key schedule, producing rounds+1 round keys of
// 16 bytes each.
func expandKey(key []byte, rounds int) [][BlockSize]byte {
	n := len(key) / 4 // key length in 32-bit words: 4, 6, or 8
	totalWords := 4 * (rounds + 1)

	words := make([]word, totalWords)
	for i := 0; i < n; i++ {
		copy(words[i][:], key[4*i:4*i+4])
	}

	for i := n; i < totalWords; i++ {
		prev := words[i-1]
		switch {
		case i%n == 0:
			words[i] = xorWord(words[i-n], xorWord(subWord(rotWord(prev)), word{RoundConstants[i/n], 0, 0, 0}))
		case n > 6 && i%n == 4:
			words[i] = xorWord(words[i-n], subWord(prev))
		default:
			words[i] = xorWord(words[i-n], prev)
		}
	}

	roundKeys := make([][BlockSize]byte, rounds+1)
	for r := 0; r <= rounds; r++ {
		for w := 0; w < 4; w++ {
			copy(roundKeys[r][4*w:4*w+4], words[4*r+w][:])
		}
	}
	return roundKeys
}
