package api

import (
	"errors"
	"fmt"
)

// ErrNoRefreshToken is returned when a token refresh is required but no
// refresh token is persisted. No network call is made in that case.
var ErrNoRefreshToken = errors.New("no refresh token available")

// Error represents a failed API call: either a non-success HTTP status or an
// envelope with success=false.
type Error struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("AlphaDesk API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// IsAPIError reports whether err is an *Error and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
