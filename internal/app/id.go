package app

import "github.com/google/uuid"

// newID produces the public identifier of a new offer or application.
// Isolated here so the ID strategy can evolve independently.
func newID() (uuid.UUID, error) {
	return uuid.NewRandom()
}
