package opossum

import mathrand "math/rand"

// sboxSeed is the fixed seed used to derive the S-box. It is part of the
// cipher's specification, not a secret: every Context built by New produces
// the same S-box, inverse S-box, and permutation table.
const sboxSeed = 42

// buildSBox derives the 256-entry substitution box (and its inverse) by
// Fisher-Yates shuffling the identity permutation with a math/rand source
// seeded at sboxSeed. This mirrors the "seed(42), shuffle from 255 down to
// 1 with rng.next(i+1)" construction the cipher is defined by; math/rand's
// Rand.Intn is exactly that next(n) primitive.
func buildSBox() (sbox, invSBox [256]byte) {
	for i := range sbox {
		sbox[i] = byte(i)
	}

	rng := mathrand.New(mathrand.NewSource(sboxSeed))
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}

	for i, v := range sbox {
		invSBox[v] = byte(i)
	}
	return sbox, invSBox
}

// permDim is the side length of the square byte-position matrix backing the
// permutation table. BlockSize must equal permDim*permDim.
const permDim = 16

// buildPermutation derives the 256-entry byte-position permutation table.
// Byte positions are treated as a permDim x permDim row-major matrix; row r
// is cyclically shifted left by r columns.
func buildPermutation() [BlockSize]int {
	var perm [BlockSize]int
	for row := 0; row < permDim; row++ {
		for col := 0; col < permDim; col++ {
			orig := row*permDim + col
			newCol := (col + permDim - row) % permDim
			perm[orig] = row*permDim + newCol
		}
	}
	return perm
}
