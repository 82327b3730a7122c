package channel_group

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/murahdahla/internal/models"
	cache "github.com/patrickmn/go-cache"
)

const (
	groupCachePrefix   = "group:"
	channelCachePrefix = "channel:"
)

// CacheConfig holds configuration for the cached channel group repository
type CacheConfig struct {
	// Repository is the store the cache reads through to
	Repository Repository

	// TTL bounds how long an entry is served without a store read
	TTL time.Duration
}

// cachedRepository serves group lookups from memory. Every message in a
// guild resolves its channel to a group, so misses are cached as well.
// Any write flushes the whole cache
type cachedRepository struct {
	next  Repository
	cache *cache.Cache
}

// NewCache wraps a repository with an in-memory read-through cache
func NewCache(cfg *CacheConfig) (*cachedRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("repository cannot be nil")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &cachedRepository{
		next:  cfg.Repository,
		cache: cache.New(ttl, ttl*2),
	}, nil
}

// SaveGroup writes through and invalidates
func (c *cachedRepository) SaveGroup(ctx context.Context, input *SaveGroupInput) error {
	defer c.cache.Flush()
	return c.next.SaveGroup(ctx, input)
}

// DeleteGroup writes through and invalidates
func (c *cachedRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	defer c.cache.Flush()
	return c.next.DeleteGroup(ctx, input)
}

// GetGroup reads through the cache
func (c *cachedRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*models.ChannelGroup, error) {
	if input == nil || input.GroupID == "" {
		return c.next.GetGroup(ctx, input)
	}

	return c.lookup(groupCachePrefix+input.GroupID, func() (*models.ChannelGroup, error) {
		return c.next.GetGroup(ctx, input)
	})
}

// GetGroupBySubmissionChannel reads through the cache
func (c *cachedRepository) GetGroupBySubmissionChannel(ctx context.Context, input *GetGroupBySubmissionChannelInput) (*models.ChannelGroup, error) {
	if input == nil || input.ChannelID == "" {
		return c.next.GetGroupBySubmissionChannel(ctx, input)
	}

	return c.lookup(channelCachePrefix+input.ChannelID, func() (*models.ChannelGroup, error) {
		return c.next.GetGroupBySubmissionChannel(ctx, input)
	})
}

// ListGroupsByServer is not cached, it only backs admin commands
func (c *cachedRepository) ListGroupsByServer(ctx context.Context, input *ListGroupsByServerInput) (*ListGroupsByServerOutput, error) {
	return c.next.ListGroupsByServer(ctx, input)
}

func (c *cachedRepository) lookup(key string, load func() (*models.ChannelGroup, error)) (*models.ChannelGroup, error) {
	if cached, found := c.cache.Get(key); found {
		group, _ := cached.(*models.ChannelGroup)
		if group == nil {
			return nil, ErrGroupNotFound
		}
		copied := *group
		return &copied, nil
	}

	group, err := load()
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			c.cache.SetDefault(key, (*models.ChannelGroup)(nil))
		}
		return nil, err
	}

	copied := *group
	c.cache.SetDefault(key, &copied)

	return group, nil
}
