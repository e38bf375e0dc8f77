package apperror

import (
	"context"
	"errors"
	"net/http"
)

// HTTPError is the flattened form handed to the response layer.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP converts any error into the envelope shape. Unknown errors never leak
// their internal message to the client.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPError{
			Status:  http.StatusServiceUnavailable,
			Code:    CodeServiceUnavailable,
			Message: "The operation timed out, please try again",
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
	}
}
