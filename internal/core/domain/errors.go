package domain

import "errors"

var (
	// ErrNotFound is returned when a campaign or participation entry does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCampaignClosed is returned when joining a campaign in a terminal status.
	ErrCampaignClosed = errors.New("campaign is closed")
	// ErrAlreadyJoined is returned when the user already holds an active entry.
	ErrAlreadyJoined = errors.New("already joined this campaign")
	// ErrWindowClosed is returned when a join happens outside the campaign window.
	ErrWindowClosed = errors.New("campaign window is closed")
	// ErrConcurrentUpdate is returned when optimistic retries are exhausted.
	// The whole call may be retried.
	ErrConcurrentUpdate = errors.New("campaign is being updated concurrently, try again")
	// ErrConflict is returned by a campaign store when the stored version has
	// advanced since the caller's read.
	ErrConflict = errors.New("version conflict")
	// ErrNotCreator is returned when someone other than the initiator cancels.
	ErrNotCreator = errors.New("only the campaign creator may cancel it")
)

// ValidationError describes invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
