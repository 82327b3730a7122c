package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/common/uuid"
	"github.com/KirkDiggler/murahdahla/internal/config"
	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/handlers/discord"
	"github.com/KirkDiggler/murahdahla/internal/logger"
	"github.com/KirkDiggler/murahdahla/internal/metrics"
	"github.com/KirkDiggler/murahdahla/internal/scheduler"
	"github.com/KirkDiggler/murahdahla/internal/services/group"
	"github.com/KirkDiggler/murahdahla/internal/services/leaderboard"
	"github.com/KirkDiggler/murahdahla/internal/services/ledger"
	"github.com/KirkDiggler/murahdahla/internal/services/paginator"
	"github.com/KirkDiggler/murahdahla/internal/services/race"
)

const shutdownTimeout = 30 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	m := metrics.New()

	stores, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close()

	// Seed sites and attachment downloads share one rate limited client
	client := games.NewClient(&games.ClientConfig{
		Timeout:      cfg.Games.Timeout,
		MaxRetries:   cfg.Games.MaxRetries,
		RetryWaitMin: games.DefaultClientConfig().RetryWaitMin,
		RetryWaitMax: games.DefaultClientConfig().RetryWaitMax,
		RateLimit:    cfg.Games.RequestsPerSec,
		Logger:       logger.Component(log, "http"),
	})
	resolver, err := games.NewResolver(&games.ResolverConfig{
		Client:         client,
		ALTTPRPatchURL: cfg.Games.ALTTPRPatchURL,
		SMZ3SeedURL:    cfg.Games.SMZ3SeedURL,
		SMTotalSeedURL: cfg.Games.SMTotalSeedURL,
		SMVARIAAPIURL:  cfg.Games.SMVARIAAPIURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create seed resolver: %w", err)
	}

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	gateway, err := discord.NewGateway(session)
	if err != nil {
		return fmt.Errorf("failed to create Discord gateway: %w", err)
	}

	systemClock := &clock.DefaultClock{}
	uuidGenerator := uuid.New()
	hooks := games.NewHooks()

	paginatorSvc, err := paginator.New(&paginator.Config{
		SlotRepo: stores.Slots,
		Gateway:  gateway,
		Clock:    systemClock,
		Logger:   log,
		Metrics:  m,
	})
	if err != nil {
		return fmt.Errorf("failed to create paginator: %w", err)
	}

	renderer, err := leaderboard.New(&leaderboard.Config{
		Hooks: hooks,
		Clock: systemClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create leaderboard renderer: %w", err)
	}

	ledgerSvc, err := ledger.New(&ledger.Config{
		SubmissionRepo: stores.Submissions,
		Gateway:        gateway,
		Hooks:          hooks,
		Clock:          systemClock,
		UUIDGenerator:  uuidGenerator,
		Logger:         log,
		Metrics:        m,
	})
	if err != nil {
		return fmt.Errorf("failed to create submission ledger: %w", err)
	}

	raceSvc, err := race.New(&race.Config{
		RaceRepo:       stores.Races,
		SubmissionRepo: stores.Submissions,
		SlotRepo:       stores.Slots,
		GroupRepo:      stores.Groups,
		Paginator:      paginatorSvc,
		Renderer:       renderer,
		Gateway:        gateway,
		Clock:          systemClock,
		Logger:         log,
		Metrics:        m,
	})
	if err != nil {
		return fmt.Errorf("failed to create race service: %w", err)
	}

	groupSvc, err := group.New(&group.Config{
		GroupRepo:     stores.Groups,
		RaceRepo:      stores.Races,
		Directory:     gateway,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("failed to create group service: %w", err)
	}

	asyncCmd, err := discord.NewAsyncCommand(&discord.AsyncCommandConfig{
		RaceService:       raceSvc,
		LedgerService:     ledgerSvc,
		GroupService:      groupSvc,
		Resolver:          resolver,
		Downloader:        client,
		Notifier:          gateway,
		MaintenanceUserID: cfg.Discord.MaintenanceUserID,
		Logger:            log,
		Metrics:           m,
	})
	if err != nil {
		return fmt.Errorf("failed to create async command: %w", err)
	}

	submissions, err := discord.NewSubmissionHandler(&discord.SubmissionHandlerConfig{
		RaceService:       raceSvc,
		LedgerService:     ledgerSvc,
		GroupService:      groupSvc,
		Gateway:           gateway,
		Downloader:        client,
		Notifier:          gateway,
		MaintenanceUserID: cfg.Discord.MaintenanceUserID,
		Logger:            log,
	})
	if err != nil {
		return fmt.Errorf("failed to create submission handler: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Commands:      []discord.CommandHandler{asyncCmd},
		Submissions:   submissions,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	var sched *scheduler.Scheduler
	if cfg.Refresh.Schedule != "" {
		sched, err = scheduler.New(&scheduler.Config{
			Schedule:    cfg.Refresh.Schedule,
			RaceService: raceSvc,
			Logger:      log,
		})
		if err != nil {
			return err
		}
		sched.Start()
	}

	var metricsServer *http.Server
	if cfg.Metrics.Addr != "" {
		metricsServer = serveMetrics(cfg.Metrics.Addr, m, log)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	select {
	case <-sc:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Error stopping metrics server")
		}
	}
	if err := bot.Stop(); err != nil {
		log.WithError(err).Warn("Error stopping bot")
	}

	log.Info("Bot has been shut down")
	return nil
}

func serveMetrics(addr string, m *metrics.Metrics, log logrus.FieldLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server failed")
		}
	}()
	log.WithField("addr", addr).Info("Serving metrics")

	return srv
}
