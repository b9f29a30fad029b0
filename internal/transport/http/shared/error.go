package shared

import (
	"errors"
	"net/http"

	jsonResponse "doorman/internal/transport/http/json"
	dErrors "doorman/pkg/domain-errors"
)

// WriteError centralizes domain error translation to HTTP responses.
// It maps transport-agnostic domain codes onto statuses and emits the API's
// `{message}` envelope. Internal error detail never reaches the client: for
// anything unexpected the body carries a fixed generic message.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		status := DomainCodeToHTTPStatus(domainErr.Code)
		message := domainErr.Message
		if status == http.StatusInternalServerError || message == "" {
			message = "something went wrong"
		}
		jsonResponse.WriteJSON(w, status, jsonResponse.MessageResponse{Message: message})
		return
	}

	// Fallback for unexpected errors
	jsonResponse.WriteJSON(w, http.StatusInternalServerError, jsonResponse.MessageResponse{
		Message: "something went wrong",
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeUnavailable, dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
