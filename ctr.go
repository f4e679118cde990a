package opossum

// IVSize is the Opossum IV size in bytes (256 bits). The IV occupies the
// first IVSize bytes of every counter block; the remaining BlockSize-IVSize
// bytes form the counter field.
const IVSize = 32

// crypt runs the CTR driver described in spec.md §4.4. Encryption and
// decryption are the same operation: CTR turns the block primitive into a
// keystream generator and XORs it against the input, so running it twice
// with the same key and IV recovers the original input.
func (c *Context) crypt(input, key, iv []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, InvalidKeyLengthError(len(key))
	}
	if len(iv) != IVSize {
		return nil, InvalidIvLengthError(len(iv))
	}

	roundKeys, err := c.expandKey(key)
	if err != nil {
		return nil, err
	}

	output := make([]byte, len(input))

	var counter [BlockSize]byte
	copy(counter[:IVSize], iv)

	p := 0
	for p < len(input) {
		keystream, err := c.encryptBlock(counter[:], roundKeys)
		if err != nil {
			return nil, err
		}

		n := BlockSize
		if remaining := len(input) - p; remaining < n {
			n = remaining
		}
		for j := 0; j < n; j++ {
			output[p+j] = input[p+j] ^ keystream[j]
		}
		p += n

		incrementCounter(counter[:])
	}

	return output, nil
}

// incrementCounter increments the BlockSize-IVSize-byte counter field
// (counter[IVSize:]) by one, treated as a big-endian integer, carrying from
// the last byte toward IVSize. If the counter field wraps all the way
// through zero, the carry stops at IVSize: the IV prefix is never altered,
// and the wrap is silent.
func incrementCounter(counter []byte) {
	for i := len(counter) - 1; i >= IVSize; i-- {
		counter[i]++
		if counter[i] != 0 {
			return
		}
	}
}
