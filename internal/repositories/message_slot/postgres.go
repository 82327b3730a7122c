package message_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds configuration for the PostgreSQL message slot repository
type PostgresConfig struct {
	Pool *pgxpool.Pool
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a message slot repository backed by the message_slots table
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("postgres pool cannot be nil")
	}

	return &postgresRepository{pool: cfg.Pool}, nil
}

// SaveSlot inserts the slot; saving it again leaves its position unchanged
func (r *postgresRepository) SaveSlot(ctx context.Context, input *SaveSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}
	slot := input.Slot
	if slot.MessageID == "" || slot.RaceID == "" {
		return errors.New("message ID and race ID cannot be empty")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO message_slots (message_id, created_at, race_id, server_id, channel_id, kind)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (message_id) DO NOTHING`,
		slot.MessageID, slot.CreatedAt, slot.RaceID, slot.ServerID, slot.ChannelID, string(slot.Kind),
	)
	if err != nil {
		return fmt.Errorf("failed to insert slot: %w", err)
	}

	return nil
}

// ListSlots returns the slots of a race and kind in insertion order
func (r *postgresRepository) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	if input == nil || input.RaceID == "" {
		return nil, errors.New("input and race ID cannot be empty")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT message_id, created_at, race_id, server_id, channel_id, kind
		FROM message_slots
		WHERE race_id = $1 AND kind = $2
		ORDER BY seq`,
		input.RaceID, string(input.Kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer rows.Close()

	slots := []*models.MessageSlot{}
	for rows.Next() {
		var (
			slot models.MessageSlot
			kind string
		)
		if err := rows.Scan(&slot.MessageID, &slot.CreatedAt, &slot.RaceID, &slot.ServerID, &slot.ChannelID, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slot.Kind = models.SlotKind(kind)
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read slots: %w", err)
	}

	return &ListSlotsOutput{Slots: slots}, nil
}

// DeleteSlot removes a slot by message ID
func (r *postgresRepository) DeleteSlot(ctx context.Context, input *DeleteSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM message_slots WHERE message_id = $1`, input.Slot.MessageID)
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSlotNotFound
	}

	return nil
}
