package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/murahdahla/internal/common/uuid UUID

// UUID generates identifiers for submissions and channel groups
type UUID interface {
	NewUUID() string
}

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a random v4 UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
