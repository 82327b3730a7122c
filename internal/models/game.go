package models

import "strings"

// GameTag identifies which randomizer or game a race is played on
type GameTag string

const (
	GameTagALTTPR  GameTag = "ALTTPR"
	GameTagSMZ3    GameTag = "SMZ3"
	GameTagFF4FE   GameTag = "FF4 FE"
	GameTagSMVARIA GameTag = "SM VARIA"
	GameTagSMTotal GameTag = "SM Total"
	GameTagOther   GameTag = "Other"
)

// AllGameTags lists every supported game in display order
var AllGameTags = []GameTag{
	GameTagALTTPR,
	GameTagSMZ3,
	GameTagFF4FE,
	GameTagSMVARIA,
	GameTagSMTotal,
	GameTagOther,
}

// ParseGameTag matches a display string case-insensitively
func ParseGameTag(s string) (GameTag, bool) {
	for _, tag := range AllGameTags {
		if strings.EqualFold(string(tag), strings.TrimSpace(s)) {
			return tag, true
		}
	}
	return "", false
}

// String returns the display name of the game
func (g GameTag) String() string {
	return string(g)
}

// RaceType is the timing mode runners are ranked by
type RaceType string

const (
	// RaceTypeIGT ranks by in-game time, usually read from a save file
	RaceTypeIGT RaceType = "IGT"

	// RaceTypeRTA ranks by real time reported by the runner
	RaceTypeRTA RaceType = "RTA"
)

// ParseRaceType accepts "igt" or "rta" in any case
func ParseRaceType(s string) (RaceType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RaceTypeIGT):
		return RaceTypeIGT, true
	case string(RaceTypeRTA):
		return RaceTypeRTA, true
	}
	return "", false
}
