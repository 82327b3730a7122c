package message_slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	slotKeyPrefix   = "slot:"
	slotSequenceKey = "slot:seq"
	raceKeyPrefix   = "race:"
)

// ErrSlotNotFound is returned when deleting a slot that is not stored
var ErrSlotNotFound = errors.New("message slot not found")

// Config holds configuration for the Redis message slot repository
type Config struct {
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed message slot repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func slotKey(messageID string) string {
	return slotKeyPrefix + messageID
}

func raceSlotsKey(raceID string, kind models.SlotKind) string {
	return fmt.Sprintf("%s%s:slots:%s", raceKeyPrefix, raceID, kind)
}

// SaveSlot stores the slot and appends it to its race list. The list is
// scored by a global counter rather than the timestamp so slots created
// within the same instant keep their creation order
func (r *redisRepository) SaveSlot(ctx context.Context, input *SaveSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}
	slot := input.Slot
	if slot.MessageID == "" || slot.RaceID == "" {
		return errors.New("message ID and race ID cannot be empty")
	}

	slotJSON, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	seq, err := r.client.Incr(ctx, slotSequenceKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate slot sequence: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, slotKey(slot.MessageID), slotJSON, 0)
	// NX keeps the original position when a slot is saved again
	pipe.ZAddNX(ctx, raceSlotsKey(slot.RaceID, slot.Kind), redis.Z{
		Score:  float64(seq),
		Member: slot.MessageID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}

// ListSlots returns the slots of a race and kind in creation order
func (r *redisRepository) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	if input == nil || input.RaceID == "" {
		return nil, errors.New("input and race ID cannot be empty")
	}

	messageIDs, err := r.client.ZRange(ctx, raceSlotsKey(input.RaceID, input.Kind), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list slot IDs: %w", err)
	}

	if len(messageIDs) == 0 {
		return &ListSlotsOutput{
			Slots: []*models.MessageSlot{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(messageIDs))
	for i, messageID := range messageIDs {
		cmds[i] = pipe.Get(ctx, slotKey(messageID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}

	slots := make([]*models.MessageSlot, 0, len(messageIDs))
	for i, cmd := range cmds {
		slotJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get slot %s: %w", messageIDs[i], err)
		}

		var slot models.MessageSlot
		if err := json.Unmarshal([]byte(slotJSON), &slot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal slot %s: %w", messageIDs[i], err)
		}
		slots = append(slots, &slot)
	}

	return &ListSlotsOutput{
		Slots: slots,
	}, nil
}

// DeleteSlot removes the slot and its list entry
func (r *redisRepository) DeleteSlot(ctx context.Context, input *DeleteSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}
	slot := input.Slot

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, slotKey(slot.MessageID))
	pipe.ZRem(ctx, raceSlotsKey(slot.RaceID, slot.Kind), slot.MessageID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	if del.Val() == 0 {
		return ErrSlotNotFound
	}

	return nil
}
