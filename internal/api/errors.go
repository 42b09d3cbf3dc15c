package api

import (
	"errors"
	"net/http"

	"groupbuy/internal/core/domain"
)

// Error codes carried in ErrorBody.Code.
const (
	CodeValidation       = "validation_error"
	CodeNotCreator       = "not_creator"
	CodeNotFound         = "not_found"
	CodeCampaignClosed   = "campaign_closed"
	CodeAlreadyJoined    = "already_joined"
	CodeWindowClosed     = "window_closed"
	CodeConcurrentUpdate = "concurrent_update"
	CodeInternal         = "internal_error"
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

var codes = []struct {
	err    error
	code   string
	status int
}{
	{domain.ErrNotFound, CodeNotFound, http.StatusNotFound},
	{domain.ErrCampaignClosed, CodeCampaignClosed, http.StatusConflict},
	{domain.ErrAlreadyJoined, CodeAlreadyJoined, http.StatusConflict},
	{domain.ErrWindowClosed, CodeWindowClosed, http.StatusUnprocessableEntity},
	{domain.ErrConcurrentUpdate, CodeConcurrentUpdate, http.StatusServiceUnavailable},
	{domain.ErrNotCreator, CodeNotCreator, http.StatusForbidden},
}

// ErrorFor maps a use-case error to an HTTP status and body. Unknown errors
// become a generic 500 so internals do not leak.
func ErrorFor(err error) (int, ErrorBody) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, ErrorBody{Code: CodeValidation, Message: verr.Error()}
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.status, ErrorBody{Code: c.code, Message: c.err.Error()}
		}
	}
	return http.StatusInternalServerError, ErrorBody{Code: CodeInternal, Message: "internal error"}
}

// Error is a non-2xx response decoded by a client. It unwraps to the domain
// sentinel matching its code, so errors.Is works across the wire.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e *Error) Unwrap() error {
	if e.Code == CodeValidation {
		return &domain.ValidationError{Message: e.Message}
	}
	for _, c := range codes {
		if c.code == e.Code {
			return c.err
		}
	}
	return nil
}
