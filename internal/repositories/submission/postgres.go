package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/murahdahla/internal/database"
	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const submissionColumns = "id, race_id, runner_id, runner_name, submitted_at, duration_ns, score, extra_number, extra_text, forfeit"

// PostgresConfig holds configuration for the PostgreSQL submission repository
type PostgresConfig struct {
	Pool *pgxpool.Pool
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a submission repository backed by the submissions table
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("postgres pool cannot be nil")
	}

	return &postgresRepository{pool: cfg.Pool}, nil
}

func durationNanos(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}
	ns := int64(*d)
	return &ns
}

// CreateSubmission relies on UNIQUE (race_id, runner_id) for deduplication
func (r *postgresRepository) CreateSubmission(ctx context.Context, input *CreateSubmissionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	sub := input.Submission
	if err := validateSubmission(sub); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO submissions (`+submissionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		sub.ID, sub.RaceID, sub.RunnerID, sub.RunnerName, sub.SubmittedAt,
		durationNanos(sub.Duration), sub.Score, sub.ExtraNumber, sub.ExtraText, sub.Forfeit,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateSubmission
		}
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// GetSubmissionByRunner retrieves a runner's submission for a race
func (r *postgresRepository) GetSubmissionByRunner(ctx context.Context, input *GetSubmissionByRunnerInput) (*models.Submission, error) {
	if input == nil || input.RaceID == "" || input.RunnerID == "" {
		return nil, errors.New("input, race ID and runner ID cannot be empty")
	}

	row := r.pool.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE race_id = $1 AND runner_id = $2`,
		input.RaceID, input.RunnerID)
	return scanSubmission(row)
}

// GetSubmissionByRunnerName retrieves the earliest submission with a
// matching name
func (r *postgresRepository) GetSubmissionByRunnerName(ctx context.Context, input *GetSubmissionByRunnerNameInput) (*models.Submission, error) {
	if input == nil || input.RaceID == "" || input.RunnerName == "" {
		return nil, errors.New("input, race ID and runner name cannot be empty")
	}

	row := r.pool.QueryRow(ctx, `
		SELECT `+submissionColumns+` FROM submissions
		WHERE race_id = $1 AND lower(runner_name) = lower($2)
		ORDER BY submitted_at, id
		LIMIT 1`,
		input.RaceID, input.RunnerName)
	return scanSubmission(row)
}

// ListSubmissions retrieves a race's submissions oldest first
func (r *postgresRepository) ListSubmissions(ctx context.Context, input *ListSubmissionsInput) (*ListSubmissionsOutput, error) {
	if input == nil || input.RaceID == "" {
		return nil, errors.New("input and race ID cannot be empty")
	}

	rows, err := r.pool.Query(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE race_id = $1 ORDER BY submitted_at, id`,
		input.RaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	subs := []*models.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}

	return &ListSubmissionsOutput{Submissions: subs}, nil
}

// UpdateSubmission overwrites the mutable columns
func (r *postgresRepository) UpdateSubmission(ctx context.Context, input *UpdateSubmissionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	sub := input.Submission
	if err := validateSubmission(sub); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE submissions
		SET runner_name = $2, duration_ns = $3, score = $4, extra_number = $5, extra_text = $6, forfeit = $7
		WHERE id = $1`,
		sub.ID, sub.RunnerName, durationNanos(sub.Duration), sub.Score, sub.ExtraNumber, sub.ExtraText, sub.Forfeit,
	)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// DeleteSubmission removes a runner's submission
func (r *postgresRepository) DeleteSubmission(ctx context.Context, input *DeleteSubmissionInput) error {
	if input == nil || input.RaceID == "" || input.RunnerID == "" {
		return errors.New("input, race ID and runner ID cannot be empty")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM submissions WHERE race_id = $1 AND runner_id = $2`, input.RaceID, input.RunnerID)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var (
		sub        models.Submission
		durationNs *int64
	)

	err := row.Scan(&sub.ID, &sub.RaceID, &sub.RunnerID, &sub.RunnerName, &sub.SubmittedAt,
		&durationNs, &sub.Score, &sub.ExtraNumber, &sub.ExtraText, &sub.Forfeit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to scan submission: %w", err)
	}

	if durationNs != nil {
		d := time.Duration(*durationNs)
		sub.Duration = &d
	}

	return &sub, nil
}
