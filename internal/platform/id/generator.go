package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator mints the ids for players, matches and saved plans. Services
// take the interface so tests can swap in sequential ids.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces 32-char hex ids. No ordering guarantees; sorts
// that matter (rosters, match lists) use domain fields with id as the final
// tiebreak only.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
