package race

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/murahdahla/internal/database"
	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const raceColumns = "id, group_id, active, created_at, game, race_type, description, source_url"

// PostgresConfig holds configuration for the PostgreSQL race repository
type PostgresConfig struct {
	Pool *pgxpool.Pool
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a race repository backed by the races table
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("postgres pool cannot be nil")
	}

	return &postgresRepository{pool: cfg.Pool}, nil
}

// CreateRace inserts the race and lets the sequence assign its ID. The
// partial unique index on active races enforces one per group
func (r *postgresRepository) CreateRace(ctx context.Context, input *CreateRaceInput) (*CreateRaceOutput, error) {
	if input == nil || input.Race == nil {
		return nil, errors.New("input and race cannot be nil")
	}

	race := *input.Race

	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO races (group_id, active, created_at, game, race_type, description, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		race.GroupID, race.Active, race.CreatedAt, string(race.Game), string(race.Type), race.Description, race.SourceURL,
	).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrActiveRaceExists
		}
		return nil, fmt.Errorf("failed to insert race: %w", err)
	}

	race.ID = strconv.FormatInt(id, 10)

	return &CreateRaceOutput{Race: &race}, nil
}

// SaveRace updates the active flag, the only mutable column
func (r *postgresRepository) SaveRace(ctx context.Context, input *SaveRaceInput) error {
	if input == nil || input.Race == nil {
		return errors.New("input and race cannot be nil")
	}

	id, err := strconv.ParseInt(input.Race.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid race ID %q: %w", input.Race.ID, err)
	}

	tag, err := r.pool.Exec(ctx, `UPDATE races SET active = $2 WHERE id = $1`, id, input.Race.Active)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrActiveRaceExists
		}
		return fmt.Errorf("failed to update race: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRaceNotFound
	}

	return nil
}

// GetRace retrieves a race by ID
func (r *postgresRepository) GetRace(ctx context.Context, input *GetRaceInput) (*models.Race, error) {
	if input == nil || input.RaceID == "" {
		return nil, errors.New("input and race ID cannot be empty")
	}

	id, err := strconv.ParseInt(input.RaceID, 10, 64)
	if err != nil {
		return nil, ErrRaceNotFound
	}

	row := r.pool.QueryRow(ctx, `SELECT `+raceColumns+` FROM races WHERE id = $1`, id)
	return scanRace(row)
}

// GetActiveRace retrieves the active race of a group
func (r *postgresRepository) GetActiveRace(ctx context.Context, input *GetActiveRaceInput) (*models.Race, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	row := r.pool.QueryRow(ctx, `SELECT `+raceColumns+` FROM races WHERE group_id = $1 AND active`, input.GroupID)
	return scanRace(row)
}

// ListActiveRaces retrieves every active race
func (r *postgresRepository) ListActiveRaces(ctx context.Context, input *ListActiveRacesInput) (*ListActiveRacesOutput, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+raceColumns+` FROM races WHERE active ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active races: %w", err)
	}
	defer rows.Close()

	races := []*models.Race{}
	for rows.Next() {
		race, err := scanRace(rows)
		if err != nil {
			return nil, err
		}
		races = append(races, race)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read active races: %w", err)
	}

	return &ListActiveRacesOutput{Races: races}, nil
}

func scanRace(row pgx.Row) (*models.Race, error) {
	var (
		race     models.Race
		id       int64
		game     string
		raceType string
	)

	err := row.Scan(&id, &race.GroupID, &race.Active, &race.CreatedAt, &game, &raceType, &race.Description, &race.SourceURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to scan race: %w", err)
	}

	race.ID = strconv.FormatInt(id, 10)
	race.Game = models.GameTag(game)
	race.Type = models.RaceType(raceType)

	return &race, nil
}
