package gateway

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying hospital API failures. Screens branch on
// these: ErrSessionExpired redirects to login, ErrValidation is surfaced
// inline next to the form, ErrUnavailable becomes the list error banner.
var (
	ErrSessionExpired = errors.New("session expired")
	ErrForbidden      = errors.New("rejected by hospital API authorization")
	ErrValidation     = errors.New("rejected by hospital API")
	ErrUnavailable    = errors.New("hospital API unavailable")
)

// UpstreamError carries the hospital API's status code and error payload
// while unwrapping to one of the sentinels above.
type UpstreamError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s (%d)", e.kind, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.kind }

// Message extracts the user-facing message from a gateway error. For
// upstream rejections this is the server's own error payload, which the
// spec requires to be shown for correction.
func Message(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return err.Error()
}
