package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/games/sram"
	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/KirkDiggler/murahdahla/internal/services/paginator"
	"github.com/KirkDiggler/murahdahla/internal/services/race"
)

func TestRenderGroupList(t *testing.T) {
	assert.Equal(t,
		"```\nThere are no groups in this server.\n```\nUse `/async addgroup` with a YAML file to add a group.",
		renderGroupList(nil))
	assert.Equal(t, "```\nweekly\n```", renderGroupList([]*models.ChannelGroup{{Name: "weekly"}}))
	assert.Equal(t, "```\nweekly, casual, z3r\n```",
		renderGroupList([]*models.ChannelGroup{{Name: "weekly"}, {Name: "casual"}, {Name: "z3r"}}))
}

func TestRenderRefreshed(t *testing.T) {
	assert.Equal(t, "There is no active race in this group.", renderRefreshed(&race.RefreshRaceOutput{}))
	assert.Equal(t, "Leaderboard refreshed with 4 runner(s).",
		renderRefreshed(&race.RefreshRaceOutput{Race: &models.Race{}, Ranked: 4}))
}

func TestUserMessage(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		expected   string
		userCaused bool
	}{
		{"game error", fmt.Errorf("%w: nothing to describe", games.ErrUnknownGame), "Unknown game: nothing to describe.", true},
		{"save error", sram.ErrInvalidSize, "Save file has the wrong size.", true},
		{"handler error", ErrNotSubmissionChannel, "This channel is not the submission channel of a group.", true},
		{"start failure", fmt.Errorf("%w: seed not found", race.ErrStart), "could not start race: seed not found", false},
		{"overflow", fmt.Errorf("publish: %w", paginator.ErrPaginationOverflow), "The leaderboard has a line too long for a Discord message.", false},
		{"store failure", errors.New("dial tcp: connection refused"), internalErrorMessage, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, userCaused := userMessage(tc.err)
			assert.Equal(t, tc.expected, msg)
			assert.Equal(t, tc.userCaused, userCaused)
		})
	}
}

func TestDisplayName(t *testing.T) {
	user := &discordgo.User{Username: "alice_99", GlobalName: "Alice"}

	assert.Equal(t, "Ali", displayName(user, &discordgo.Member{Nick: "Ali"}))
	assert.Equal(t, "Alice", displayName(user, &discordgo.Member{}))
	assert.Equal(t, "alice_99", displayName(&discordgo.User{Username: "alice_99"}, nil))
}
