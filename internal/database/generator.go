package database

import (
	"math/rand/v2"
	"strings"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// Generator produces the random values used by bulk generation. Every letter
// is an independent uniform draw over A-Z.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator wraps rng; a nil rng gets a randomly seeded PCG source
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Letters returns n uppercase letters
func (g *Generator) Letters(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('A' + g.rng.IntN(26)))
	}
	return b.String()
}

// Name returns a five letter name
func (g *Generator) Name() string {
	return g.Letters(models.GeneratedNameLength)
}

// LabName returns a candidate laboratory name of the form XXX-Y
func (g *Generator) LabName() string {
	suffix := models.LabSuffixes[g.rng.IntN(len(models.LabSuffixes))]
	return g.Letters(models.LabPrefixLength) + "-" + suffix
}

// Level returns a uniformly drawn researcher level
func (g *Generator) Level() models.Level {
	levels := models.Levels()
	return levels[g.rng.IntN(len(levels))]
}

// Distance returns a distance in [MinGeneratedDistance, MaxGeneratedDistance]
func (g *Generator) Distance() int64 {
	span := int64(models.MaxGeneratedDistance - models.MinGeneratedDistance + 1)
	return models.MinGeneratedDistance + g.rng.Int64N(span)
}

// Pick returns a uniformly chosen element of ids, which must not be empty
func (g *Generator) Pick(ids []int64) int64 {
	return ids[g.rng.IntN(len(ids))]
}
