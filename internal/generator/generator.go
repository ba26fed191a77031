// Package generator builds password alphabets and samples passwords from them.
package generator

import (
	crand "crypto/rand"
	"errors"
	"math/rand/v2"
	"strings"
)

var (
	ErrInvalidLength = errors.New("invalid length specified")
	ErrEmptyAlphabet = errors.New("alphabet must contain at least one character")
)

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a ChaCha8-backed source seeded from the operating system.
func NewSource() *rand.Rand {
	var seed [32]byte
	crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Sampler draws characters from an alphabet with replacement.
type Sampler struct {
	src Source
}

// NewSampler creates a Sampler. A nil src uses NewSource.
func NewSampler(src Source) *Sampler {
	if src == nil {
		src = NewSource()
	}
	return &Sampler{src: src}
}

// Sample returns a string of exactly length characters, each picked
// independently and uniformly from alphabet.
func (s *Sampler) Sample(alphabet string, length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(alphabet[s.src.IntN(len(alphabet))])
	}
	return sb.String(), nil
}
