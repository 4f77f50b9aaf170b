// Package ident generates the human-memorable session identifiers used by
// the session manager: one adjective, one noun and a number below one
// thousand, joined with dashes ("brave-falcon-42"). The tokens are labels,
// not collision-free identifiers; callers that need uniqueness must check
// against their own registry.
package ident

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"brave", "calm", "clever", "eager",
	"gentle", "happy", "keen", "lively",
	"merry", "noble", "quick", "quiet",
	"sunny", "swift", "warm", "witty",
}

var nouns = []string{
	"falcon", "river", "meadow", "harbor",
	"summit", "forest", "lantern", "comet",
	"breeze", "canyon", "island", "garden",
	"beacon", "willow", "prairie", "orchid",
}

// Options configure a Generator.
type Options struct {
	// Intn returns a uniform random integer in [0, n). It must be safe for
	// concurrent use. Defaults to math/rand.Intn.
	Intn func(n int) int
}

// Generator produces session identifiers.
type Generator struct {
	intn func(n int) int
}

// New creates a Generator with optional overrides.
func New(optFns ...func(o *Options)) *Generator {
	opts := Options{
		Intn: rand.Intn,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Generator{intn: opts.Intn}
}

// SessionID returns a fresh adjective-noun-number token.
func (g *Generator) SessionID() string {
	adj := adjectives[g.intn(len(adjectives))]
	noun := nouns[g.intn(len(nouns))]
	return fmt.Sprintf("%s-%s-%d", adj, noun, g.intn(1000))
}
