// Package random builds the PCG source that rounds draw words and reveal
// positions from. Seeds come from crypto/rand; tests pass fixed seeds.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed pair using crypto/rand.
func NewSeed() (uint64, uint64, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}

// New returns a PCG-backed generator seeded from crypto/rand.
func New() (*rand.Rand, error) {
	s1, s2, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return Seeded(s1, s2), nil
}

// Seeded returns a deterministic generator for the given seed pair.
func Seeded(s1, s2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(s1, s2))
}
