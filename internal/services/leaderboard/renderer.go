package leaderboard

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/models"
)

type renderer struct {
	hooks *games.Hooks
	clock clock.Clock
}

// New creates a leaderboard renderer
func New(cfg *Config) (*renderer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Hooks == nil {
		return nil, ErrNilHooks
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &renderer{
		hooks: cfg.Hooks,
		clock: cfg.Clock,
	}, nil
}

// Render lists ranked submissions fastest first below the race header.
// The input slice is not modified
func (r *renderer) Render(input *RenderInput) (*RenderOutput, error) {
	if input == nil || input.Race == nil {
		return nil, ErrNilRace
	}

	ranked := make([]*models.Submission, 0, len(input.Submissions))
	for _, sub := range input.Submissions {
		if sub != nil && sub.Ranked() {
			ranked = append(ranked, sub)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	hook := r.hooks.For(input.Race.Game)
	now := r.clock.Now()

	lines := make([]string, 0, len(ranked)+1)
	lines = append(lines, input.Race.LeaderboardHeader())
	for i, sub := range ranked {
		name := sub.RunnerName
		if input.View == ViewLeaderboard && now.Sub(sub.SubmittedAt) <= RecentWindow {
			name = "*" + name + "*"
		}
		lines = append(lines, hook.FormatLine(i+1, name, sub))
	}

	return &RenderOutput{
		Text:   strings.Join(lines, "\n"),
		Ranked: len(ranked),
	}, nil
}

// less orders by duration ascending, then score and extra number
// descending. Missing values go last. Submission time and runner break
// the remaining ties so any input order gives the same board
func less(a, b *models.Submission) bool {
	if a.Duration != nil && b.Duration != nil {
		if *a.Duration != *b.Duration {
			return *a.Duration < *b.Duration
		}
	} else if a.Duration != nil || b.Duration != nil {
		return a.Duration != nil
	}

	if c := compareDesc(a.Score, b.Score); c != 0 {
		return c < 0
	}

	if c := compareDesc(a.ExtraNumber, b.ExtraNumber); c != 0 {
		return c < 0
	}

	if !a.SubmittedAt.Equal(b.SubmittedAt) {
		return a.SubmittedAt.Before(b.SubmittedAt)
	}

	return a.RunnerID < b.RunnerID
}

// compareDesc is negative when a ranks before b on a higher-is-better field
func compareDesc(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a > *b:
		return -1
	case *a < *b:
		return 1
	}
	return 0
}
