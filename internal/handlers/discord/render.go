package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/games/sram"
	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/KirkDiggler/murahdahla/internal/services/group"
	"github.com/KirkDiggler/murahdahla/internal/services/ledger"
	"github.com/KirkDiggler/murahdahla/internal/services/paginator"
	"github.com/KirkDiggler/murahdahla/internal/services/race"
)

// internalErrorMessage is shown when the failure is not the user's to fix
const internalErrorMessage = "Something went wrong. The bot maintainer has been notified."

func codeBlock(s string) string {
	return "```\n" + s + "\n```"
}

// renderGroupList lists group names the way the listgroups reply shows them
func renderGroupList(groups []*models.ChannelGroup) string {
	if len(groups) == 0 {
		return codeBlock("There are no groups in this server.") +
			"\nUse `/async addgroup` with a YAML file to add a group."
	}

	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return codeBlock(strings.Join(names, ", "))
}

func renderStarted(out *race.StartRaceOutput) string {
	msg := "Started race: " + out.Race.Description
	if out.Archived != nil {
		msg = "Archived the previous race.\n" + msg
	}
	return msg
}

func renderStopped(out *race.StopRaceOutput) string {
	return fmt.Sprintf("Race stopped. Removed the spoiler role from %d runner(s).", out.Runners)
}

func renderRefreshed(out *race.RefreshRaceOutput) string {
	if out.Race == nil {
		return "There is no active race in this group."
	}
	return fmt.Sprintf("Leaderboard refreshed with %d runner(s).", out.Ranked)
}

func renderTimeChanged(sub *models.Submission) string {
	return fmt.Sprintf("Changed the time of %s to %s.", sub.RunnerName, games.FormatDuration(*sub.Duration))
}

func renderScoreChanged(sub *models.Submission) string {
	return fmt.Sprintf("Changed the collection rate of %s to %d.", sub.RunnerName, *sub.Score)
}

// userMessage returns the text to show for an error and whether the error
// is one the user caused. Anything else is reported to the maintainer
func userMessage(err error) (string, bool) {
	var (
		handlerErr HandlerError
		raceErr    race.RaceError
		ledgerErr  ledger.LedgerError
		groupErr   group.GroupError
		gameErr    games.GameError
		sramErr    sram.SRAMError
	)

	switch {
	case errors.Is(err, race.ErrStart):
		// a seed site or Discord refused; the cause is worth showing
		return err.Error(), false
	case errors.Is(err, paginator.ErrPaginationOverflow):
		return "The leaderboard has a line too long for a Discord message.", false
	case errors.As(err, &handlerErr),
		errors.As(err, &raceErr),
		errors.As(err, &ledgerErr),
		errors.As(err, &groupErr),
		errors.As(err, &gameErr),
		errors.As(err, &sramErr):
		return capitalize(err.Error()) + ".", true
	}

	return internalErrorMessage, false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
