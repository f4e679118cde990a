// Package opossum implements the Opossum block cipher: a substitution-
// permutation network operating on 2048-bit (256-byte) blocks under
// 2048-bit (256-byte) keys, wrapped in a counter-mode (CTR) streaming
// construction that turns the block primitive into a length-preserving
// stream cipher over arbitrary-length input.
//
// Opossum is an experimental, research/toy construction. It uses a fixed,
// publicly-derivable S-box, a highly structured permutation, and a key
// schedule with limited non-linearity. It makes no security claims and
// must not be used to protect data that matters. The specification is
// preserved exactly so that conforming implementations interoperate
// bit-for-bit; that is the only guarantee this package offers.
package opossum

// DefaultRounds is the default Opossum round count, for callers of New or
// MustNew that have no reason to choose another.
const DefaultRounds = 160

// Context owns the S-box, inverse S-box, permutation table, and round
// count for an Opossum cipher instance. It holds no key material and is
// immutable once constructed by New, so a single Context may be shared
// across goroutines for concurrent, independent Encrypt/Decrypt calls as
// long as each call supplies its own key and IV.
type Context struct {
	sbox    [256]byte
	invSBox [256]byte
	perm    [BlockSize]int
	rounds  int
}

// New builds a Context with the given round count. The S-box, inverse
// S-box, and permutation table are derived deterministically; every Context
// constructed with the same round count is equivalent.
func New(rounds int) (*Context, error) {
	if rounds < 1 {
		return nil, RoundCountError(rounds)
	}

	sbox, invSBox := buildSBox()
	return &Context{
		sbox:    sbox,
		invSBox: invSBox,
		perm:    buildPermutation(),
		rounds:  rounds,
	}, nil
}

// MustNew is like New but panics if rounds is invalid. It exists for
// callers that want a ready-to-use Context without threading a
// construction error through their own initialization path, the same role
// dongle's package-level Encrypt/Decrypt facades play for their callers.
func MustNew(rounds int) *Context {
	c, err := New(rounds)
	if err != nil {
		panic(err)
	}
	return c
}

// Rounds returns the round count the Context was constructed with.
func (c *Context) Rounds() int {
	return c.rounds
}

// Encrypt encrypts plaintext under key and iv using CTR mode, returning a
// ciphertext of the same length. key must be exactly KeySize bytes and iv
// exactly IVSize bytes.
func (c *Context) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	return c.crypt(plaintext, key, iv)
}

// Decrypt decrypts ciphertext under key and iv using CTR mode, returning a
// plaintext of the same length. Decrypt is bit-identical to Encrypt under
// the same key and IV, since CTR mode is its own inverse.
func (c *Context) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	return c.crypt(ciphertext, key, iv)
}
