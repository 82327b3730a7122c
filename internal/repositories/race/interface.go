package race

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/murahdahla/internal/repositories/race Repository

import (
	"context"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

// Repository defines the interface for race persistence
type Repository interface {
	// CreateRace assigns an ID to the race and stores it. An active race is
	// rejected with ErrActiveRaceExists if its group already has one
	CreateRace(ctx context.Context, input *CreateRaceInput) (*CreateRaceOutput, error)

	// SaveRace persists changes to an existing race
	SaveRace(ctx context.Context, input *SaveRaceInput) error

	// GetRace retrieves a race by ID
	GetRace(ctx context.Context, input *GetRaceInput) (*models.Race, error)

	// GetActiveRace retrieves the active race of a channel group
	GetActiveRace(ctx context.Context, input *GetActiveRaceInput) (*models.Race, error)

	// ListActiveRaces retrieves the active race of every group
	ListActiveRaces(ctx context.Context, input *ListActiveRacesInput) (*ListActiveRacesOutput, error)
}
