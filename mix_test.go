package opossum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateLeftBits_FullRotationIsIdentity(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i * 7)
	}

	out := rotateLeftBits(data, 8*len(data))
	assert.Equal(t, data, out)
}

func TestRotateLeftBits_ZeroIsIdentity(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	out := rotateLeftBits(data, 0)
	assert.Equal(t, data, out)
}

func TestRotateLeftBits_ByteMultipleIsByteRotation(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	out := rotateLeftBits(data, 8) // one full byte
	assert.Equal(t, []byte{0x04, 0x01, 0x02, 0x03}, out)
}

func TestRotateLeftBits_PartialBitShift(t *testing.T) {
	// Rotating 0x80 0x00 left by 1 bit should produce 0x00 0x01.
	data := []byte{0x80, 0x00}
	out := rotateLeftBits(data, 1)
	assert.Equal(t, []byte{0x00, 0x01}, out)
}

func TestRotateByteLeft(t *testing.T) {
	assert.Equal(t, byte(0b00000010), rotateByteLeft(0b00000001, 1))
	assert.Equal(t, byte(0b00000001), rotateByteLeft(0b10000000, 1))
	assert.Equal(t, byte(0), rotateByteLeft(0, 3))
}

func TestMixColumns_UsesPreUpdateSnapshot(t *testing.T) {
	state := make([]byte, BlockSize)
	for i := range state {
		state[i] = byte(i)
	}

	before := make([]byte, mixGroupSize)
	copy(before, state[:mixGroupSize])

	mixColumns(state)

	// Recompute the first group by hand from the snapshot and compare;
	// an in-place (non-snapshotted) implementation would diverge because
	// later iterations in the loop would see already-updated neighbours.
	var want [mixGroupSize]byte
	copy(want[:], before)
	for i := 0; i < mixGroupSize; i++ {
		next := before[(i+1)%mixGroupSize]
		rotated := rotateByteLeft(next, 3)
		want[i] ^= rotated
		want[i] ^= before[(i+mixGroupSize-1)%mixGroupSize]
	}

	assert.Equal(t, want[:], state[:mixGroupSize])
}

func TestApplyRoundDependentTransforms_Deterministic(t *testing.T) {
	state1 := make([]byte, BlockSize)
	state2 := make([]byte, BlockSize)
	for i := range state1 {
		state1[i] = byte(i)
		state2[i] = byte(i)
	}

	applyRoundDependentTransforms(state1, 5)
	applyRoundDependentTransforms(state2, 5)

	assert.Equal(t, state1, state2)
}

func TestApplyRoundDependentTransforms_RoundAffectsOutput(t *testing.T) {
	state1 := make([]byte, BlockSize)
	state2 := make([]byte, BlockSize)
	for i := range state1 {
		state1[i] = byte(i)
		state2[i] = byte(i)
	}

	applyRoundDependentTransforms(state1, 1)
	applyRoundDependentTransforms(state2, 2)

	assert.NotEqual(t, state1, state2)
}
