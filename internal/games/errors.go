package games

// GameError is a custom error type for game lookups and submission extras
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrUnknownGame          GameError = "unknown game"
	ErrDescriptionTooLong   GameError = "game description is too long"
	ErrMissingCollection    GameError = "submission did not include a collection rate"
	ErrCollectionOutOfRange GameError = "collection rate out of range"
	ErrInvalidSeed          GameError = "could not read seed information"
	ErrExtraTextTooLong     GameError = "submission comment is too long"
)
