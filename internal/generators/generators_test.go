package generators_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imfops/gadget-api/internal/generators"
)

func TestGenerator_Codename(t *testing.T) {
	gen := generators.New()

	prefixes := map[string]bool{"The": true, "Project": true, "Operation": true, "Agent": true, "Device": true}

	for i := 0; i < 100; i++ {
		codename := gen.Codename()
		parts := strings.SplitN(codename, " ", 2)
		assert.Len(t, parts, 2)
		assert.True(t, prefixes[parts[0]], "unexpected prefix in %q", codename)
		assert.NotEmpty(t, parts[1])
	}
}

func TestGenerator_MissionSuccessProbability(t *testing.T) {
	gen := generators.New()

	for i := 0; i < 1000; i++ {
		p := gen.MissionSuccessProbability()
		assert.GreaterOrEqual(t, p, 30)
		assert.LessOrEqual(t, p, 100)
	}
}

func TestGenerator_SelfDestructCode(t *testing.T) {
	gen := generators.New()
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := gen.SelfDestructCode()
		assert.Regexp(t, pattern, code)
		seen[code] = true
	}

	// 36^8 combinations make a collision across 100 draws implausible.
	assert.Greater(t, len(seen), 90)
}
