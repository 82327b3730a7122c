package channel_group

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	groupKeyPrefix             = "channel_group:"
	submissionChannelKeyPrefix = "submission_channel:"
	serverGroupsKeyPrefix      = "server:groups:"
)

// Config holds configuration for the Redis channel group repository
type Config struct {
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed channel group repository
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

func groupKey(groupID string) string {
	return groupKeyPrefix + groupID
}

func submissionChannelKey(channelID string) string {
	return submissionChannelKeyPrefix + channelID
}

// SaveGroup claims the submission channel and writes the group
func (r *redisRepository) SaveGroup(ctx context.Context, input *SaveGroupInput) error {
	if input == nil || input.Group == nil {
		return errors.New("input and group cannot be nil")
	}
	group := input.Group
	if group.ID == "" || group.ServerID == "" || group.SubmissionChannelID == "" {
		return errors.New("group, server and submission channel IDs cannot be empty")
	}

	claimed, err := r.client.SetNX(ctx, submissionChannelKey(group.SubmissionChannelID), group.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim submission channel: %w", err)
	}
	if !claimed {
		owner, err := r.client.Get(ctx, submissionChannelKey(group.SubmissionChannelID)).Result()
		if err != nil {
			return fmt.Errorf("failed to read submission channel owner: %w", err)
		}
		if owner != group.ID {
			return ErrSubmissionChannelTaken
		}
	}

	groupJSON, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("failed to marshal group: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, groupKey(group.ID), groupJSON, 0)
	pipe.SAdd(ctx, serverGroupsKeyPrefix+group.ServerID, group.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID from Redis
func (r *redisRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*models.ChannelGroup, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	groupJSON, err := r.client.Get(ctx, groupKey(input.GroupID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	var group models.ChannelGroup
	if err := json.Unmarshal([]byte(groupJSON), &group); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group: %w", err)
	}

	return &group, nil
}

// GetGroupBySubmissionChannel follows the channel to group mapping
func (r *redisRepository) GetGroupBySubmissionChannel(ctx context.Context, input *GetGroupBySubmissionChannelInput) (*models.ChannelGroup, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	groupID, err := r.client.Get(ctx, submissionChannelKey(input.ChannelID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group ID for channel: %w", err)
	}

	return r.GetGroup(ctx, &GetGroupInput{GroupID: groupID})
}

// ListGroupsByServer retrieves a server's groups sorted by name
func (r *redisRepository) ListGroupsByServer(ctx context.Context, input *ListGroupsByServerInput) (*ListGroupsByServerOutput, error) {
	if input == nil || input.ServerID == "" {
		return nil, errors.New("input and server ID cannot be empty")
	}

	groupIDs, err := r.client.SMembers(ctx, serverGroupsKeyPrefix+input.ServerID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list group IDs: %w", err)
	}

	groups := make([]*models.ChannelGroup, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		group, err := r.GetGroup(ctx, &GetGroupInput{GroupID: groupID})
		if err != nil {
			if errors.Is(err, ErrGroupNotFound) {
				continue
			}
			return nil, err
		}
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	return &ListGroupsByServerOutput{
		Groups: groups,
	}, nil
}

// DeleteGroup removes the group and releases its submission channel
func (r *redisRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	if input == nil || input.GroupID == "" {
		return errors.New("input and group ID cannot be empty")
	}

	group, err := r.GetGroup(ctx, &GetGroupInput{GroupID: input.GroupID})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, groupKey(group.ID))
	pipe.Del(ctx, submissionChannelKey(group.SubmissionChannelID))
	pipe.SRem(ctx, serverGroupsKeyPrefix+group.ServerID, group.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return nil
}
