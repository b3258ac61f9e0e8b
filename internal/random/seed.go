// Package random provides seed generation and seeded generators for shuffling.
//
// A seed drawn from crypto/rand initializes a PCG generator, so any shuffle
// can be replayed by passing the same seed back to New.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a generator whose output is fully determined by seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewFromEntropy returns a generator seeded by NewSeed along with the seed used.
func NewFromEntropy() (*rand.Rand, uint64, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, 0, err
	}
	return New(seed), seed, nil
}
