package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/config"
	"github.com/KirkDiggler/murahdahla/internal/database"
	groupRepo "github.com/KirkDiggler/murahdahla/internal/repositories/channel_group"
	slotRepo "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot"
	raceRepo "github.com/KirkDiggler/murahdahla/internal/repositories/race"
	submissionRepo "github.com/KirkDiggler/murahdahla/internal/repositories/submission"
)

// stores holds one repository per entity on the configured backend
type stores struct {
	Races       raceRepo.Repository
	Submissions submissionRepo.Repository
	Slots       slotRepo.Repository
	Groups      groupRepo.Repository

	closers []func()
}

func (s *stores) Close() {
	for _, c := range s.closers {
		c()
	}
}

func openStores(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*stores, error) {
	var (
		s   *stores
		err error
	)

	switch cfg.Store.Backend {
	case "postgres":
		s, err = openPostgres(ctx, cfg)
	default:
		s, err = openRedis(ctx, cfg)
	}
	if err != nil {
		return nil, err
	}

	// Every message in every server looks up its channel group
	groups, err := groupRepo.NewCache(&groupRepo.CacheConfig{
		Repository: s.Groups,
		TTL:        cfg.Cache.GroupTTL,
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create group cache: %w", err)
	}
	s.Groups = groups

	log.WithField("backend", cfg.Store.Backend).Info("Connected to store")
	return s, nil
}

func openRedis(ctx context.Context, cfg *config.Config) (*stores, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s := &stores{closers: []func(){func() { _ = client.Close() }}}

	races, err := raceRepo.NewRedis(&raceRepo.Config{RedisClient: client})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create race repository: %w", err)
	}
	submissions, err := submissionRepo.NewRedis(&submissionRepo.Config{RedisClient: client})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create submission repository: %w", err)
	}
	slots, err := slotRepo.NewRedis(&slotRepo.Config{RedisClient: client})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create message slot repository: %w", err)
	}
	groups, err := groupRepo.NewRedis(&groupRepo.Config{RedisClient: client})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create channel group repository: %w", err)
	}

	s.Races, s.Submissions, s.Slots, s.Groups = races, submissions, slots, groups
	return s, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*stores, error) {
	pool, err := database.NewPool(ctx, &database.Config{URL: cfg.Store.PostgresDSN})
	if err != nil {
		return nil, err
	}

	s := &stores{closers: []func(){pool.Close}}

	if err := buildPostgres(s, pool); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func buildPostgres(s *stores, pool *pgxpool.Pool) error {
	races, err := raceRepo.NewPostgres(&raceRepo.PostgresConfig{Pool: pool})
	if err != nil {
		return fmt.Errorf("failed to create race repository: %w", err)
	}
	submissions, err := submissionRepo.NewPostgres(&submissionRepo.PostgresConfig{Pool: pool})
	if err != nil {
		return fmt.Errorf("failed to create submission repository: %w", err)
	}
	slots, err := slotRepo.NewPostgres(&slotRepo.PostgresConfig{Pool: pool})
	if err != nil {
		return fmt.Errorf("failed to create message slot repository: %w", err)
	}
	groups, err := groupRepo.NewPostgres(&groupRepo.PostgresConfig{Pool: pool})
	if err != nil {
		return fmt.Errorf("failed to create channel group repository: %w", err)
	}

	s.Races, s.Submissions, s.Slots, s.Groups = races, submissions, slots, groups
	return nil
}
