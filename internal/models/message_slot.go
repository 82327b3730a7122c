package models

import "time"

// SlotKind says which channel a message slot lives in
type SlotKind string

const (
	// SlotKindSubmission is the race post in the submission channel, which
	// later receives the archived leaderboard
	SlotKindSubmission SlotKind = "submission"

	// SlotKindLeaderboard holds the live leaderboard
	SlotKindLeaderboard SlotKind = "leaderboard"
)

// MessageSlot is one chat message holding a page of rendered text
type MessageSlot struct {
	MessageID string
	CreatedAt time.Time
	RaceID    string
	ServerID  string
	ChannelID string
	Kind      SlotKind
}
