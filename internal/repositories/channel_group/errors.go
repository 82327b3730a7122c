package channel_group

import "errors"

var (
	// ErrGroupNotFound is returned when a channel group is not found
	ErrGroupNotFound = errors.New("channel group not found")

	// ErrSubmissionChannelTaken is returned when another group already
	// uses the submission channel
	ErrSubmissionChannelTaken = errors.New("submission channel already belongs to a group")
)
