package common

import (
	"errors"

	"fjacquet/creditlens/internal/auth"
	"fjacquet/creditlens/internal/funding"
	"fjacquet/creditlens/internal/parsererror"
)

// User-facing wording for errors the site showed verbatim.
const (
	MsgSessionExpired = "Session expired. Please login again."
	MsgSubmitFailed   = "Failed to submit application"
)

// UserMessage returns the text printed for a command error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, auth.ErrSessionExpired):
		return MsgSessionExpired
	case errors.Is(err, funding.ErrSubmitFailed):
		var apiErr *parsererror.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return MsgSubmitFailed + ": " + apiErr.Message
		}
		return MsgSubmitFailed + ". Please try again."
	default:
		return err.Error()
	}
}
