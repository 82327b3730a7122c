package games

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

// maxExtraText bounds free-form submission comments
const maxExtraText = 100

// Hook parses and formats the game specific part of a submission
//
//go:generate mockgen -package=mocks -destination=mocks/mock_hook.go github.com/KirkDiggler/murahdahla/internal/games Hook
type Hook interface {
	// ParseExtras reads the tokens after the finish time into sub
	ParseExtras(tokens []string, sub *models.Submission) error

	// ValidateScore checks a score set by a moderator correction
	ValidateScore(score int) error

	// FormatLine renders one leaderboard line. name may already carry
	// emphasis markers
	FormatLine(rank int, name string, sub *models.Submission) string
}

// Hooks maps each game to its submission hook
type Hooks struct {
	byTag    map[models.GameTag]Hook
	fallback Hook
}

// NewHooks returns the hooks for every supported game
func NewHooks() *Hooks {
	text := &textHook{}
	return &Hooks{
		byTag: map[models.GameTag]Hook{
			models.GameTagALTTPR:  &collectionHook{game: models.GameTagALTTPR, max: 216},
			models.GameTagSMZ3:    &collectionHook{game: models.GameTagSMZ3, max: 316},
			models.GameTagSMVARIA: &collectionHook{game: models.GameTagSMVARIA, max: 100},
			models.GameTagSMTotal: &collectionHook{game: models.GameTagSMTotal, max: 100},
			models.GameTagFF4FE:   text,
			models.GameTagOther:   text,
		},
		fallback: text,
	}
}

// For returns the hook of a game, falling back to opaque text handling
func (h *Hooks) For(tag models.GameTag) Hook {
	if hook, ok := h.byTag[tag]; ok {
		return hook
	}
	return h.fallback
}

func baseLine(rank int, name string, sub *models.Submission) string {
	line := fmt.Sprintf("%d) %s", rank, name)
	if sub.Duration != nil {
		line += " - " + FormatDuration(*sub.Duration)
	}
	return line
}

// collectionHook requires a single item count between 0 and max
type collectionHook struct {
	game models.GameTag
	max  int
}

func (h *collectionHook) ParseExtras(tokens []string, sub *models.Submission) error {
	if len(tokens) != 1 {
		return fmt.Errorf("%w for %s", ErrMissingCollection, h.game)
	}

	score, err := strconv.Atoi(tokens[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrCollectionOutOfRange, tokens[0])
	}
	if err := h.ValidateScore(score); err != nil {
		return err
	}

	sub.Score = &score
	return nil
}

func (h *collectionHook) ValidateScore(score int) error {
	if score < 0 || score > h.max {
		return fmt.Errorf("%w: %s collection must be between 0 and %d", ErrCollectionOutOfRange, h.game, h.max)
	}
	return nil
}

func (h *collectionHook) FormatLine(rank int, name string, sub *models.Submission) string {
	line := baseLine(rank, name, sub)
	if sub.Score != nil {
		line += fmt.Sprintf(" - %d/%d", *sub.Score, h.max)
	}
	return line
}

// textHook keeps whatever follows the time as an opaque comment
type textHook struct{}

func (h *textHook) ParseExtras(tokens []string, sub *models.Submission) error {
	if len(tokens) == 0 {
		return nil
	}

	text := strings.Join(tokens, " ")
	if len([]rune(text)) > maxExtraText {
		return ErrExtraTextTooLong
	}

	sub.ExtraText = &text
	return nil
}

func (h *textHook) ValidateScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: score cannot be negative", ErrCollectionOutOfRange)
	}
	return nil
}

func (h *textHook) FormatLine(rank int, name string, sub *models.Submission) string {
	line := baseLine(rank, name, sub)
	if sub.Score != nil {
		line += fmt.Sprintf(" - %d", *sub.Score)
	}
	if sub.ExtraText != nil && *sub.ExtraText != "" {
		line += " - " + *sub.ExtraText
	}
	return line
}
