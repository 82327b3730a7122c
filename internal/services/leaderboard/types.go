package leaderboard

import (
	"time"

	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/models"
)

// RecentWindow is how long a new result stays emphasized on the live board
const RecentWindow = 6 * time.Hour

// View selects where the text will be shown
type View int

const (
	// ViewLeaderboard is the live board; recent results are emphasized
	ViewLeaderboard View = iota

	// ViewArchive is the final board written to the submission channel
	ViewArchive
)

// Config holds the dependencies of the renderer
type Config struct {
	Hooks *games.Hooks
	Clock clock.Clock
}

type RenderInput struct {
	Race        *models.Race
	Submissions []*models.Submission
	View        View
}

type RenderOutput struct {
	Text string

	// Ranked is the number of submissions listed
	Ranked int
}
