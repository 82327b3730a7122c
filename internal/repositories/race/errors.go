package race

import "errors"

var (
	// ErrRaceNotFound is returned when a race, or an active race for a
	// group, does not exist
	ErrRaceNotFound = errors.New("race not found")

	// ErrActiveRaceExists is returned when creating a second active race
	// for the same group
	ErrActiveRaceExists = errors.New("group already has an active race")
)
