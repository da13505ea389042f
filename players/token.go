package players

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
)

// Token is a 32-character hex bearer token identifying one player's
// session to the HTTP API.
type Token string

// tokenSource produces tokens on demand. tokenGenerator is the only
// production implementation; tests substitute a stub to exercise the
// registry's collision-reroll path deterministically.
type tokenSource interface {
	Next() Token
}

// newSeededSource returns a math/rand source seeded from crypto/rand,
// the same pattern GameSession uses to seed its spawn-point generator.
func newSeededSource() *mrand.Rand {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return mrand.New(mrand.NewSource(0))
	}
	return mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(buf[:]))))
}

// tokenGenerator produces tokens by concatenating the hex output of
// two independent 64-bit generators, mirroring the two-mt19937_64
// generator scheme the original server uses.
type tokenGenerator struct {
	gen1 *mrand.Rand
	gen2 *mrand.Rand
}

func newTokenGenerator() *tokenGenerator {
	return &tokenGenerator{gen1: newSeededSource(), gen2: newSeededSource()}
}

func (g *tokenGenerator) Next() Token {
	return Token(fmt.Sprintf("%016x%016x", g.gen1.Uint64(), g.gen2.Uint64()))
}
