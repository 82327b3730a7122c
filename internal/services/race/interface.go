package race

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/murahdahla/internal/services/race Service

import "context"

// Service defines the race lifecycle of a channel group
type Service interface {
	// StartRace opens a new race in a group, archiving any race still active
	StartRace(ctx context.Context, input *StartRaceInput) (*StartRaceOutput, error)

	// StopRace archives the active race of a group
	StopRace(ctx context.Context, input *StopRaceInput) (*StopRaceOutput, error)

	// RefreshRace re-renders the live leaderboard of a group's active race
	RefreshRace(ctx context.Context, input *RefreshRaceInput) (*RefreshRaceOutput, error)

	// RefreshActiveRaces refreshes every active race, for scheduled runs
	RefreshActiveRaces(ctx context.Context, input *RefreshActiveRacesInput) (*RefreshActiveRacesOutput, error)

	// GetActiveRace returns the active race of a group, if any
	GetActiveRace(ctx context.Context, input *GetActiveRaceInput) (*GetActiveRaceOutput, error)
}
