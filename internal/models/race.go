package models

import (
	"time"
)

// Race is one async race run inside a channel group
type Race struct {
	// ID is assigned by the store when the race is created
	ID string

	// GroupID is the channel group the race belongs to
	GroupID string

	// Active is true until the race is stopped. It is the only field
	// changed after creation
	Active bool

	// CreatedAt is when the race was started
	CreatedAt time.Time

	// Game is the game being raced
	Game GameTag

	// Type is the timing mode
	Type RaceType

	// Description is the settings line computed once at start
	Description string

	// SourceURL is the seed link, empty when the game has none
	SourceURL string
}

// LeaderboardHeader is the first line of every rendered leaderboard
func (r *Race) LeaderboardHeader() string {
	return "Leaderboard for " + r.Description
}
