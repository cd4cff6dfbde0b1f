package utils

import "github.com/google/uuid"

// UUIDGenerator assigns account ids. UUIDv7 keeps ids roughly ordered by
// creation time, which suits the primary key index.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random v4 id when the v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
