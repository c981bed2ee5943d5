package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mrops-br/cart-api/internal/domain"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// StatusFor maps a domain error kind to an HTTP status code
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error sends an error response with the status mapped from err.
// Messages of non-domain errors are not exposed.
func Error(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)

	message := internalErrorMessage
	var de *domain.Error
	if errors.As(err, &de) {
		message = de.Message
	}

	JSON(w, StatusFor(err), ErrorResponse{
		Error: message,
		Code:  kind.String(),
	})
}
