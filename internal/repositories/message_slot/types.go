package message_slot

import "github.com/KirkDiggler/murahdahla/internal/models"

type SaveSlotInput struct {
	Slot *models.MessageSlot
}

type ListSlotsInput struct {
	RaceID string
	Kind   models.SlotKind
}

type ListSlotsOutput struct {
	Slots []*models.MessageSlot
}

type DeleteSlotInput struct {
	Slot *models.MessageSlot
}
