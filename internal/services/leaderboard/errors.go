package leaderboard

// RenderError is a custom error type for rendering errors
type RenderError string

// Error implements the error interface
func (e RenderError) Error() string {
	return string(e)
}

const (
	ErrNilRace   RenderError = "race cannot be nil"
	ErrNilConfig RenderError = "config cannot be nil"
	ErrNilHooks  RenderError = "game hooks cannot be nil"
	ErrNilClock  RenderError = "clock cannot be nil"
)
