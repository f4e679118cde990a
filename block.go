package opossum

// BlockSize is the Opossum block size in bytes (2048 bits).
const BlockSize = 256

// encryptBlock transforms one BlockSize-byte block through the SPN: an
// initial whitening XOR with roundKeys[0], R-1 main rounds (substitute,
// permute, mix, round-dependent transform, key XOR), and a final round that
// omits the mixing step. roundKeys must contain exactly c.rounds+1 entries.
func (c *Context) encryptBlock(block []byte, roundKeys [][KeySize]byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, InvalidBlockLengthError(len(block))
	}

	var state [BlockSize]byte
	copy(state[:], block)

	xorInto(state[:], roundKeys[0][:])

	for round := 1; round < c.rounds; round++ {
		c.subBytes(state[:])
		c.permuteBytes(state[:])
		mixColumns(state[:])
		applyRoundDependentTransforms(state[:], round)
		xorInto(state[:], roundKeys[round][:])
	}

	c.subBytes(state[:])
	c.permuteBytes(state[:])
	applyRoundDependentTransforms(state[:], c.rounds)
	xorInto(state[:], roundKeys[c.rounds][:])

	out := make([]byte, BlockSize)
	copy(out, state[:])
	return out, nil
}

// subBytes applies the S-box to every byte of state independently.
func (c *Context) subBytes(state []byte) {
	for i, b := range state {
		state[i] = c.sbox[b]
	}
}

// permuteBytes relocates every byte of state to its destination position
// under the permutation table: out[perm[i]] = state[i].
func (c *Context) permuteBytes(state []byte) {
	var t [BlockSize]byte
	for i, b := range state {
		t[c.perm[i]] = b
	}
	copy(state, t[:])
}

// xorInto XORs src into dst in place. Both slices must have equal length.
func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
