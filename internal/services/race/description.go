package race

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

// Describe builds the race description posted in the submission channel,
// e.g. "2025-04-05 - ALTTPR - Open Defeat Ganon 7/7 - https://alttpr.com/h/abc"
func Describe(date time.Time, game models.GameTag, summary, sourceURL string) string {
	description := fmt.Sprintf("%s - %s - %s", date.Format("2006-01-02"), game, summary)
	if sourceURL != "" {
		description += " - " + sourceURL
	}
	return description
}
