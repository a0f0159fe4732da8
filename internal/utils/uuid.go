package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for users, tasks and tags.
// UUIDv7 is preferred because its time-ordered prefix keeps b-tree indexes
// append-mostly; the random v4 form is a fallback if v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
