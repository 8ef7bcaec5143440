package main

import "math/rand/v2"

// Rand supplies the random integers the shift and randomize rules draw from.
// Normal runs use the process-wide source; tests inject a seeded *rand.Rand,
// which satisfies this interface directly.
type Rand interface {
	IntN(n int) int
}

type processRand struct{}

func (processRand) IntN(n int) int {
	return rand.IntN(n)
}

var defaultRand Rand = processRand{}
