package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	submissionKeyPrefix = "submission:"
	raceKeyPrefix       = "race:"
	runnersKeySuffix    = ":runners"
	submissionsSuffix   = ":submissions"
)

// Config holds configuration for the Redis submission repository
type Config struct {
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed submission repository
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

func submissionKey(submissionID string) string {
	return submissionKeyPrefix + submissionID
}

// runnersKey maps runner ID to submission ID for one race
func runnersKey(raceID string) string {
	return raceKeyPrefix + raceID + runnersKeySuffix
}

// submissionsKey orders a race's submission IDs by submission time
func submissionsKey(raceID string) string {
	return raceKeyPrefix + raceID + submissionsSuffix
}

func validateSubmission(sub *models.Submission) error {
	if sub == nil {
		return errors.New("submission cannot be nil")
	}
	if sub.ID == "" || sub.RaceID == "" || sub.RunnerID == "" {
		return errors.New("submission, race and runner IDs cannot be empty")
	}
	return nil
}

// CreateSubmission claims the runner slot with HSETNX so two concurrent
// submissions from the same runner cannot both be stored
func (r *redisRepository) CreateSubmission(ctx context.Context, input *CreateSubmissionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	sub := input.Submission
	if err := validateSubmission(sub); err != nil {
		return err
	}

	claimed, err := r.client.HSetNX(ctx, runnersKey(sub.RaceID), sub.RunnerID, sub.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to claim runner: %w", err)
	}
	if !claimed {
		return ErrDuplicateSubmission
	}

	if err := r.write(ctx, sub); err != nil {
		r.client.HDel(ctx, runnersKey(sub.RaceID), sub.RunnerID)
		return err
	}

	return nil
}

func (r *redisRepository) write(ctx context.Context, sub *models.Submission) error {
	subJSON, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, submissionKey(sub.ID), subJSON, 0)
	pipe.ZAdd(ctx, submissionsKey(sub.RaceID), redis.Z{
		Score:  float64(sub.SubmittedAt.UnixNano()),
		Member: sub.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

func (r *redisRepository) get(ctx context.Context, submissionID string) (*models.Submission, error) {
	subJSON, err := r.client.Get(ctx, submissionKey(submissionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	var sub models.Submission
	if err := json.Unmarshal([]byte(subJSON), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}

	return &sub, nil
}

// GetSubmissionByRunner resolves the runner index then loads the submission
func (r *redisRepository) GetSubmissionByRunner(ctx context.Context, input *GetSubmissionByRunnerInput) (*models.Submission, error) {
	if input == nil || input.RaceID == "" || input.RunnerID == "" {
		return nil, errors.New("input, race ID and runner ID cannot be empty")
	}

	submissionID, err := r.client.HGet(ctx, runnersKey(input.RaceID), input.RunnerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get runner submission: %w", err)
	}

	return r.get(ctx, submissionID)
}

// GetSubmissionByRunnerName scans the race, names are not indexed
func (r *redisRepository) GetSubmissionByRunnerName(ctx context.Context, input *GetSubmissionByRunnerNameInput) (*models.Submission, error) {
	if input == nil || input.RaceID == "" || input.RunnerName == "" {
		return nil, errors.New("input, race ID and runner name cannot be empty")
	}

	out, err := r.ListSubmissions(ctx, &ListSubmissionsInput{RaceID: input.RaceID})
	if err != nil {
		return nil, err
	}

	for _, sub := range out.Submissions {
		if strings.EqualFold(sub.RunnerName, input.RunnerName) {
			return sub, nil
		}
	}

	return nil, ErrSubmissionNotFound
}

// ListSubmissions retrieves a race's submissions oldest first
func (r *redisRepository) ListSubmissions(ctx context.Context, input *ListSubmissionsInput) (*ListSubmissionsOutput, error) {
	if input == nil || input.RaceID == "" {
		return nil, errors.New("input and race ID cannot be empty")
	}

	submissionIDs, err := r.client.ZRange(ctx, submissionsKey(input.RaceID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list submission IDs: %w", err)
	}

	if len(submissionIDs) == 0 {
		return &ListSubmissionsOutput{
			Submissions: []*models.Submission{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(submissionIDs))
	for i, submissionID := range submissionIDs {
		cmds[i] = pipe.Get(ctx, submissionKey(submissionID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	subs := make([]*models.Submission, 0, len(submissionIDs))
	for i, cmd := range cmds {
		subJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// deleted between the range and the pipeline
				continue
			}
			return nil, fmt.Errorf("failed to get submission %s: %w", submissionIDs[i], err)
		}

		var sub models.Submission
		if err := json.Unmarshal([]byte(subJSON), &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission %s: %w", submissionIDs[i], err)
		}
		subs = append(subs, &sub)
	}

	return &ListSubmissionsOutput{
		Submissions: subs,
	}, nil
}

// UpdateSubmission overwrites the stored submission if it exists
func (r *redisRepository) UpdateSubmission(ctx context.Context, input *UpdateSubmissionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	sub := input.Submission
	if err := validateSubmission(sub); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, submissionKey(sub.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check submission: %w", err)
	}
	if exists == 0 {
		return ErrSubmissionNotFound
	}

	return r.write(ctx, sub)
}

// DeleteSubmission removes the submission and its index entries
func (r *redisRepository) DeleteSubmission(ctx context.Context, input *DeleteSubmissionInput) error {
	if input == nil || input.RaceID == "" || input.RunnerID == "" {
		return errors.New("input, race ID and runner ID cannot be empty")
	}

	submissionID, err := r.client.HGet(ctx, runnersKey(input.RaceID), input.RunnerID).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to get runner submission: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, submissionKey(submissionID))
	pipe.HDel(ctx, runnersKey(input.RaceID), input.RunnerID)
	pipe.ZRem(ctx, submissionsKey(input.RaceID), submissionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	return nil
}
