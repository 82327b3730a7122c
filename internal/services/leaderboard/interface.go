package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/KirkDiggler/murahdahla/internal/services/leaderboard Renderer

// Renderer turns a race's submissions into leaderboard text
type Renderer interface {
	// Render ranks the non-forfeited submissions under the race header
	Render(input *RenderInput) (*RenderOutput, error)
}
