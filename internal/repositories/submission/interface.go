package submission

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/murahdahla/internal/repositories/submission Repository

import (
	"context"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

// Repository defines the interface for submission persistence
type Repository interface {
	// CreateSubmission stores a new submission. A second submission for
	// the same runner and race fails with ErrDuplicateSubmission
	CreateSubmission(ctx context.Context, input *CreateSubmissionInput) error

	// GetSubmissionByRunner retrieves a runner's submission for a race
	GetSubmissionByRunner(ctx context.Context, input *GetSubmissionByRunnerInput) (*models.Submission, error)

	// GetSubmissionByRunnerName retrieves a submission by display name,
	// ignoring case
	GetSubmissionByRunnerName(ctx context.Context, input *GetSubmissionByRunnerNameInput) (*models.Submission, error)

	// ListSubmissions retrieves all submissions of a race in submission order
	ListSubmissions(ctx context.Context, input *ListSubmissionsInput) (*ListSubmissionsOutput, error)

	// UpdateSubmission overwrites an existing submission
	UpdateSubmission(ctx context.Context, input *UpdateSubmissionInput) error

	// DeleteSubmission removes a runner's submission from a race
	DeleteSubmission(ctx context.Context, input *DeleteSubmissionInput) error
}
