package opossum

// KeySize is the Opossum master key size in bytes (2048 bits). Every round
// key produced by expandKey is also KeySize bytes, since each round key is
// one 256-byte window of the expanded-key buffer.
const KeySize = 256

// expandKey stretches a KeySize-byte master key into rounds+1 round keys,
// each KeySize bytes, following the window-rotate-substitute-XOR recipe:
// rotate the previous window left by 3 bytes, apply the S-box to every 4th
// byte, XOR in a round constant derived from the window index, then XOR the
// result with the previous window (i.e. the one KeySize bytes earlier).
func (c *Context) expandKey(key []byte) ([][KeySize]byte, error) {
	if len(key) != KeySize {
		return nil, InvalidKeyLengthError(len(key))
	}

	count := c.rounds + 1
	expanded := make([]byte, count*KeySize)
	copy(expanded[:KeySize], key)

	for i := KeySize; i < len(expanded); i += KeySize {
		prev := expanded[i-KeySize : i]

		var t [KeySize]byte
		copy(t[:], prev)
		rotateLeftBytes(t[:], 3)

		for j := 0; j < KeySize; j += 4 {
			t[j] = c.sbox[t[j]]
		}

		rc := byte((i / KeySize) % 256)
		t[0] ^= rc

		for j := 0; j < KeySize; j++ {
			t[j] ^= prev[j]
		}

		copy(expanded[i:i+KeySize], t[:])
	}

	roundKeys := make([][KeySize]byte, count)
	for i := range roundKeys {
		copy(roundKeys[i][:], expanded[i*KeySize:(i+1)*KeySize])
	}
	return roundKeys, nil
}

// rotateLeftBytes rotates buf left by n bytes in place (the leading n
// bytes move to the end).
func rotateLeftBytes(buf []byte, n int) {
	n %= len(buf)
	if n == 0 {
		return
	}
	rotated := make([]byte, len(buf))
	copy(rotated, buf[n:])
	copy(rotated[len(buf)-n:], buf[:n])
	copy(buf, rotated)
}
