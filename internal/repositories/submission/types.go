package submission

import "github.com/KirkDiggler/murahdahla/internal/models"

type CreateSubmissionInput struct {
	Submission *models.Submission
}

type GetSubmissionByRunnerInput struct {
	RaceID   string
	RunnerID string
}

type GetSubmissionByRunnerNameInput struct {
	RaceID     string
	RunnerName string
}

type ListSubmissionsInput struct {
	RaceID string
}

type ListSubmissionsOutput struct {
	Submissions []*models.Submission
}

type UpdateSubmissionInput struct {
	Submission *models.Submission
}

type DeleteSubmissionInput struct {
	RaceID   string
	RunnerID string
}
