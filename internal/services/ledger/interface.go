package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/murahdahla/internal/services/ledger Service

import "context"

// Service records and corrects runner submissions
type Service interface {
	// Submit parses a runner's message into a submission, or a forfeit.
	// A runner who already submitted gets Duplicate with no write
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// AmendTime overwrites the finish time of a runner's submission
	AmendTime(ctx context.Context, input *AmendTimeInput) (*AmendTimeOutput, error)

	// AmendScore overwrites the collection rate of a runner's submission
	AmendScore(ctx context.Context, input *AmendScoreInput) (*AmendScoreOutput, error)

	// Remove deletes a runner's submission and takes back the spoiler role
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)
}
