package message_slot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/murahdahla/internal/repositories/message_slot Repository

import (
	"context"
)

// Repository defines the interface for message slot persistence
type Repository interface {
	// SaveSlot records a chat message used to hold leaderboard text
	SaveSlot(ctx context.Context, input *SaveSlotInput) error

	// ListSlots returns a race's slots of one kind, oldest first
	ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error)

	// DeleteSlot forgets a slot after its message was deleted
	DeleteSlot(ctx context.Context, input *DeleteSlotInput) error
}
