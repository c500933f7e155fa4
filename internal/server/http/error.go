package http

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorResponse is the JSON envelope for every API error:
//
//	{"error": "<message>"}
type ErrorResponse struct {
	Message string `json:"error" doc:"Human-readable error message"`

	status int
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *ErrorResponse) GetStatus() int {
	return e.status
}

// All errors produced through huma (validation included) use the flat
// {"error": ...} envelope instead of the RFC 7807 default.
func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			if err != nil {
				message = fmt.Sprintf("%s: %s", message, err)
			}
		}

		return &ErrorResponse{Message: message, status: status}
	}
}
