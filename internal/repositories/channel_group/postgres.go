package channel_group

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/murahdahla/internal/database"
	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const groupColumns = "id, server_id, name, submission_channel_id, leaderboard_channel_id, spoiler_channel_id, spoiler_role_id, created_at"

// PostgresConfig holds configuration for the PostgreSQL channel group repository
type PostgresConfig struct {
	Pool *pgxpool.Pool
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a channel group repository backed by the channel_groups table
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("postgres pool cannot be nil")
	}

	return &postgresRepository{pool: cfg.Pool}, nil
}

// SaveGroup upserts by ID; the submission channel column is unique
func (r *postgresRepository) SaveGroup(ctx context.Context, input *SaveGroupInput) error {
	if input == nil || input.Group == nil {
		return errors.New("input and group cannot be nil")
	}
	g := input.Group
	if g.ID == "" || g.ServerID == "" || g.SubmissionChannelID == "" {
		return errors.New("group, server and submission channel IDs cannot be empty")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO channel_groups (`+groupColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			submission_channel_id = EXCLUDED.submission_channel_id,
			leaderboard_channel_id = EXCLUDED.leaderboard_channel_id,
			spoiler_channel_id = EXCLUDED.spoiler_channel_id,
			spoiler_role_id = EXCLUDED.spoiler_role_id`,
		g.ID, g.ServerID, g.Name, g.SubmissionChannelID, g.LeaderboardChannelID, g.SpoilerChannelID, g.SpoilerRoleID, g.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrSubmissionChannelTaken
		}
		return fmt.Errorf("failed to save group: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID
func (r *postgresRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*models.ChannelGroup, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	return scanGroup(r.pool.QueryRow(ctx, `SELECT `+groupColumns+` FROM channel_groups WHERE id = $1`, input.GroupID))
}

// GetGroupBySubmissionChannel retrieves the group owning a submission channel
func (r *postgresRepository) GetGroupBySubmissionChannel(ctx context.Context, input *GetGroupBySubmissionChannelInput) (*models.ChannelGroup, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	return scanGroup(r.pool.QueryRow(ctx, `SELECT `+groupColumns+` FROM channel_groups WHERE submission_channel_id = $1`, input.ChannelID))
}

// ListGroupsByServer retrieves a server's groups sorted by name
func (r *postgresRepository) ListGroupsByServer(ctx context.Context, input *ListGroupsByServerInput) (*ListGroupsByServerOutput, error) {
	if input == nil || input.ServerID == "" {
		return nil, errors.New("input and server ID cannot be empty")
	}

	rows, err := r.pool.Query(ctx, `SELECT `+groupColumns+` FROM channel_groups WHERE server_id = $1 ORDER BY name`, input.ServerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.ChannelGroup{}
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read groups: %w", err)
	}

	return &ListGroupsByServerOutput{Groups: groups}, nil
}

// DeleteGroup removes a group by ID
func (r *postgresRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	if input == nil || input.GroupID == "" {
		return errors.New("input and group ID cannot be empty")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM channel_groups WHERE id = $1`, input.GroupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGroupNotFound
	}

	return nil
}

func scanGroup(row pgx.Row) (*models.ChannelGroup, error) {
	var g models.ChannelGroup
	err := row.Scan(&g.ID, &g.ServerID, &g.Name, &g.SubmissionChannelID, &g.LeaderboardChannelID, &g.SpoilerChannelID, &g.SpoilerRoleID, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to scan group: %w", err)
	}
	return &g, nil
}
