package models

import "time"

// ChannelGroup ties a submission channel to its leaderboard and spoiler
// channels and the role that unlocks the spoiler channel
type ChannelGroup struct {
	ID                   string
	ServerID             string
	Name                 string
	SubmissionChannelID  string
	LeaderboardChannelID string
	SpoilerChannelID     string
	SpoilerRoleID        string
	CreatedAt            time.Time
}

// ChannelFor returns the channel holding slots of the given kind
func (g *ChannelGroup) ChannelFor(kind SlotKind) string {
	if kind == SlotKindLeaderboard {
		return g.LeaderboardChannelID
	}
	return g.SubmissionChannelID
}
