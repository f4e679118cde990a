package opossum

import (
	"crypto/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidRounds(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)
	assert.IsType(t, RoundCountError(0), err)

	_, err = New(-5)
	require.Error(t, err)
}

func TestNew_ValidRounds(t *testing.T) {
	c, err := New(DefaultRounds)
	require.NoError(t, err)
	assert.Equal(t, DefaultRounds, c.Rounds())
}

func TestMustNew_PanicsOnInvalidRounds(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(0)
	})
}

// TestContext_ConcurrentReuse exercises the claim in spec.md §5: a Context
// built once is safe to share across many concurrent, independent
// Encrypt/Decrypt calls as long as each call uses its own buffers.
func TestContext_ConcurrentReuse(t *testing.T) {
	c := MustNew(DefaultRounds)

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()

			key := make([]byte, KeySize)
			iv := make([]byte, IVSize)
			plaintext := make([]byte, 512)
			_, _ = rand.Read(key)
			_, _ = rand.Read(iv)
			_, _ = rand.Read(plaintext)

			ciphertext, err := c.Encrypt(plaintext, key, iv)
			assert.NoError(t, err)

			recovered, err := c.Decrypt(ciphertext, key, iv)
			assert.NoError(t, err)
			assert.Equal(t, plaintext, recovered)
		}(w)
	}

	wg.Wait()
}
