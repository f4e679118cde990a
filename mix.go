package opossum

// mixGroupSize is the width of one MixColumns diffusion group. BlockSize
// must be an exact multiple of mixGroupSize.
const mixGroupSize = 16

// mixColumns provides intra-group diffusion. state is partitioned into
// BlockSize/mixGroupSize consecutive groups; within each group, every byte
// is XORed with a 3-bit-rotated version of its next neighbour and with its
// previous neighbour (wrapping within the group), reading both neighbours
// from a snapshot of the group taken before any byte in it is updated.
// Updating in place without that snapshot would silently change the
// cipher.
func mixColumns(state []byte) {
	for groupStart := 0; groupStart < len(state); groupStart += mixGroupSize {
		var g [mixGroupSize]byte
		copy(g[:], state[groupStart:groupStart+mixGroupSize])

		for i := 0; i < mixGroupSize; i++ {
			next := g[(i+1)%mixGroupSize]
			rotated := rotateByteLeft(next, 3)
			state[groupStart+i] ^= rotated
			state[groupStart+i] ^= g[(i+mixGroupSize-1)%mixGroupSize]
		}
	}
}

// rotateByteLeft rotates an 8-bit value left by n bits (n in [0,8)).
func rotateByteLeft(b byte, n uint) byte {
	return ((b << n) | (b >> (8 - n))) & 0xFF
}

// applyRoundDependentTransforms mixes round into the state: first
// rotateLeftBits over the whole block with k = (round mod 8)+1, then a per-byte
// XOR with a round-and-position-dependent value.
func applyRoundDependentTransforms(state []byte, round int) {
	rot := (round % 8) + 1
	rotated := rotateLeftBits(state, rot)
	copy(state, rotated)

	x := (round*17 + 83) % 256
	for i := range state {
		state[i] ^= byte((x + i) % 256)
	}
}

// rotateLeftBits returns a new slice computed from data and a shift k
// (k normalized modulo 8*len(data)). With byteShift = k/8, bitShift = k%8,
// src = i-byteShift and prev = src-1 (indices taken modulo len(data)),
// output byte i is data[src]<<bitShift | data[prev]>>(8-bitShift). The low
// bits of each output byte therefore come from the byte before src, so for
// bitShift != 0 the result is not a plain rotation of the big-endian bit
// string: {0x01, 0x80, 0x00} with k=1 gives {0x02, 0x00, 0x01}.
//
// When k is a multiple of 8, the general formula's bitShift==0 case would
// require an 8-bit shift, which is undefined for a byte, so that case is
// special-cased here to out[i] = data[src]: every byte moves byteShift
// positions toward the end of the slice, wrapping to the front.
func rotateLeftBits(data []byte, k int) []byte {
	n := len(data)
	out := make([]byte, n)
	if n == 0 {
		return out
	}

	totalBits := 8 * n
	k %= totalBits
	if k < 0 {
		k += totalBits
	}

	byteShift := k / 8
	bitShift := uint(k % 8)

	if bitShift == 0 {
		for i := 0; i < n; i++ {
			src := (i - byteShift + n) % n
			out[i] = data[src]
		}
		return out
	}

	for i := 0; i < n; i++ {
		src := (i - byteShift + n) % n
		prev := (src - 1 + n) % n
		out[i] = ((data[src] << bitShift) | (data[prev] >> (8 - bitShift))) & 0xFF
	}
	return out
}
