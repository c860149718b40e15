package generators

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand"
)

// Codename vocabulary: 5 prefixes x 15 nouns, 75 combinations. Callers are
// responsible for handling collisions against already-assigned codenames.
var (
	codenamePrefixes = []string{"The", "Project", "Operation", "Agent", "Device"}

	codenameNouns = []string{
		"Nightingale", "Shadow", "Phoenix", "Kraken", "Ghost",
		"Falcon", "Mirage", "Specter", "Eclipse", "Viper",
		"Phantom", "Raven", "Chimera", "Dragon", "Sentinel",
	}
)

const selfDestructCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces codenames, mission success probabilities and
// self-destruct confirmation codes. It is stateless.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// Codename returns a random "<prefix> <noun>" display codename.
// Not guaranteed unique.
func (g *Generator) Codename() string {
	prefix := codenamePrefixes[rand.Intn(len(codenamePrefixes))]
	noun := codenameNouns[rand.Intn(len(codenameNouns))]
	return fmt.Sprintf("%s %s", prefix, noun)
}

// MissionSuccessProbability returns a uniform random integer in [30, 100].
func (g *Generator) MissionSuccessProbability() int {
	return rand.Intn(71) + 30
}

// SelfDestructCode returns an 8-character uppercase alphanumeric
// confirmation code. The code is verified server-side, so its bytes come
// from crypto/rand.
func (g *Generator) SelfDestructCode() string {
	b := make([]byte, 8)
	if _, err := cryptorand.Read(b); err != nil {
		for i := range b {
			b[i] = byte(rand.Intn(256))
		}
	}
	for i := range b {
		b[i] = selfDestructCharset[int(b[i])%len(selfDestructCharset)]
	}
	return string(b)
}
