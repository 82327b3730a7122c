package race

import "github.com/KirkDiggler/murahdahla/internal/models"

type CreateRaceInput struct {
	Race *models.Race
}

type CreateRaceOutput struct {
	Race *models.Race
}

type SaveRaceInput struct {
	Race *models.Race
}

type GetRaceInput struct {
	RaceID string
}

type GetActiveRaceInput struct {
	GroupID string
}

type ListActiveRacesInput struct {
}

type ListActiveRacesOutput struct {
	Races []*models.Race
}
