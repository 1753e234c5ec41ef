package core

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// CreateRandomSeed creates a PCG source from a crypto random seed.
// The source is returned by value so it can be stored and copied for replays.
func CreateRandomSeed() rand.PCG {
	var randBytes [16]byte
	_, err := cryptoRand.Read(randBytes[:])
	if err != nil {
		// crypto/rand only fails if the OS entropy source is gone, nothing sensible to do here
		panic(err)
	}

	return *rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}

// SeededRNG creates a reproducible rng from two seed halves.
func SeededRNG(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// RollPercent is a uniform roll in [0, 100) compared against percent.
// Percentages at or above 100 always succeed without drawing from the rng.
func RollPercent(rng *rand.Rand, percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}

	return rng.IntN(100) < percent
}
