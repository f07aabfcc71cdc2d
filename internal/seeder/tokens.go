package seeder

import "github.com/google/uuid"

// TokenGenerator hands out opaque user tokens that are unique within a run.
type TokenGenerator struct {
	issued map[string]struct{}
	next   func() string
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{
		issued: make(map[string]struct{}),
		next:   uuid.NewString,
	}
}

func (g *TokenGenerator) Next() string {
	for {
		token := g.next()
		if _, dup := g.issued[token]; dup {
			continue
		}
		g.issued[token] = struct{}{}
		return token
	}
}
