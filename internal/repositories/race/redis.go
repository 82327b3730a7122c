package race

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	raceKeyPrefix       = "race:"
	raceSequenceKey     = "race:seq"
	activeRaceKeyPrefix = "group:active_race:"
	groupRacesKeyPrefix = "group:races:"
	activeRacesKey      = "active_races"
)

// Config holds configuration for the Redis race repository
type Config struct {
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed race repository
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

func raceKey(raceID string) string {
	return raceKeyPrefix + raceID
}

func activeRaceKey(groupID string) string {
	return activeRaceKeyPrefix + groupID
}

// CreateRace takes the next ID from a counter and claims the group's
// active pointer before writing the race
func (r *redisRepository) CreateRace(ctx context.Context, input *CreateRaceInput) (*CreateRaceOutput, error) {
	if input == nil || input.Race == nil {
		return nil, errors.New("input and race cannot be nil")
	}
	if input.Race.GroupID == "" {
		return nil, errors.New("group ID cannot be empty")
	}

	seq, err := r.client.Incr(ctx, raceSequenceKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate race ID: %w", err)
	}

	race := *input.Race
	race.ID = strconv.FormatInt(seq, 10)

	if race.Active {
		claimed, err := r.client.SetNX(ctx, activeRaceKey(race.GroupID), race.ID, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to claim active race: %w", err)
		}
		if !claimed {
			return nil, ErrActiveRaceExists
		}
	}

	if err := r.write(ctx, &race); err != nil {
		if race.Active {
			r.client.Del(ctx, activeRaceKey(race.GroupID))
		}
		return nil, err
	}

	return &CreateRaceOutput{Race: &race}, nil
}

// SaveRace persists a race and keeps the active pointer in step with it
func (r *redisRepository) SaveRace(ctx context.Context, input *SaveRaceInput) error {
	if input == nil || input.Race == nil {
		return errors.New("input and race cannot be nil")
	}
	if input.Race.ID == "" {
		return errors.New("race ID cannot be empty")
	}

	return r.write(ctx, input.Race)
}

func (r *redisRepository) write(ctx context.Context, race *models.Race) error {
	raceJSON, err := json.Marshal(race)
	if err != nil {
		return fmt.Errorf("failed to marshal race: %w", err)
	}

	current, err := r.client.Get(ctx, activeRaceKey(race.GroupID)).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read active race: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, raceKey(race.ID), raceJSON, 0)
	pipe.ZAdd(ctx, groupRacesKeyPrefix+race.GroupID, redis.Z{
		Score:  float64(race.CreatedAt.UnixNano()),
		Member: race.ID,
	})

	if race.Active {
		pipe.Set(ctx, activeRaceKey(race.GroupID), race.ID, 0)
		pipe.SAdd(ctx, activeRacesKey, race.ID)
	} else {
		// only clear the pointer if it still refers to this race
		if current == race.ID {
			pipe.Del(ctx, activeRaceKey(race.GroupID))
		}
		pipe.SRem(ctx, activeRacesKey, race.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save race: %w", err)
	}

	return nil
}

// GetRace retrieves a race by ID from Redis
func (r *redisRepository) GetRace(ctx context.Context, input *GetRaceInput) (*models.Race, error) {
	if input == nil || input.RaceID == "" {
		return nil, errors.New("input and race ID cannot be empty")
	}

	raceJSON, err := r.client.Get(ctx, raceKey(input.RaceID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to get race: %w", err)
	}

	var race models.Race
	if err := json.Unmarshal([]byte(raceJSON), &race); err != nil {
		return nil, fmt.Errorf("failed to unmarshal race: %w", err)
	}

	return &race, nil
}

// GetActiveRace follows the group's active pointer
func (r *redisRepository) GetActiveRace(ctx context.Context, input *GetActiveRaceInput) (*models.Race, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	raceID, err := r.client.Get(ctx, activeRaceKey(input.GroupID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to get active race ID: %w", err)
	}

	race, err := r.GetRace(ctx, &GetRaceInput{RaceID: raceID})
	if err != nil {
		return nil, err
	}

	if !race.Active {
		return nil, ErrRaceNotFound
	}

	return race, nil
}

// ListActiveRaces retrieves all active races using a pipeline
func (r *redisRepository) ListActiveRaces(ctx context.Context, input *ListActiveRacesInput) (*ListActiveRacesOutput, error) {
	raceIDs, err := r.client.SMembers(ctx, activeRacesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active race IDs: %w", err)
	}

	if len(raceIDs) == 0 {
		return &ListActiveRacesOutput{
			Races: []*models.Race{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(raceIDs))
	for i, raceID := range raceIDs {
		cmds[i] = pipe.Get(ctx, raceKey(raceID))
	}

	// individual misses are handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get active races: %w", err)
	}

	races := make([]*models.Race, 0, len(raceIDs))
	for i, cmd := range cmds {
		raceJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get race %s: %w", raceIDs[i], err)
		}

		var race models.Race
		if err := json.Unmarshal([]byte(raceJSON), &race); err != nil {
			return nil, fmt.Errorf("failed to unmarshal race %s: %w", raceIDs[i], err)
		}

		if race.Active {
			races = append(races, &race)
		}
	}

	return &ListActiveRacesOutput{
		Races: races,
	}, nil
}
