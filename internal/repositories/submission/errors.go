package submission

import "errors"

var (
	// ErrSubmissionNotFound is returned when a submission is not found
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrDuplicateSubmission is returned when the runner already has a
	// submission in the race
	ErrDuplicateSubmission = errors.New("runner already submitted for this race")
)
