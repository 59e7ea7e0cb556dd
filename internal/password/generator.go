package password

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
)

// Source supplies uniform random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator produces passwords for a strength level.
// A Generator is not safe for concurrent use.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator that draws from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// NewSeededGenerator creates a Generator whose output is fully determined by seed.
func NewSeededGenerator(seed [32]byte) *Generator {
	return NewGenerator(rand.New(rand.NewChaCha8(seed)))
}

// NewRandomGenerator creates a Generator seeded from the operating system.
func NewRandomGenerator() *Generator {
	var seed [32]byte
	// crypto/rand.Read does not return an error since Go 1.24.
	_, _ = cryptorand.Read(seed[:])
	return NewSeededGenerator(seed)
}

// Generate returns a password for level. The length is drawn uniformly from
// the level's range and each character uniformly from its charset.
// It panics if level is not a defined level.
func (g *Generator) Generate(level Level) string {
	p := PolicyFor(level)

	length := p.Min + g.src.IntN(p.Max-p.Min+1)
	result := make([]byte, length)
	for i := range result {
		result[i] = g.randChar(p.Charset)
	}
	return string(result)
}

// randChar picks a character from an ASCII charset.
func (g *Generator) randChar(charset string) byte {
	return charset[g.src.IntN(len(charset))]
}
