package models

import (
	"time"
)

// Submission is a runner's result, or forfeit, for one race
type Submission struct {
	// ID is the unique identifier for the submission
	ID string

	// RaceID is the race this submission belongs to
	RaceID string

	// RunnerID is the Discord user ID of the runner
	RunnerID string

	// RunnerName is the display name shown on the leaderboard
	RunnerName string

	// SubmittedAt is when the submission was recorded
	SubmittedAt time.Time

	// Duration is the finish time, nil for forfeits
	Duration *time.Duration

	// Score is the collection rate or similar metric, higher is better
	Score *int

	// ExtraNumber is an additional ranked value for games that need one
	ExtraNumber *int

	// ExtraText is free text for games without structured extras
	ExtraText *string

	// Forfeit marks a runner who did not finish
	Forfeit bool
}

// Ranked reports whether the submission appears on the leaderboard
func (s *Submission) Ranked() bool {
	return !s.Forfeit
}
