package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/lectio/internal/error_values"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// ReadJSON decodes a request body. An empty body is an error.
func ReadJSON(body io.Reader, dst any) error {
	if body == nil {
		return io.EOF
	}
	return sonic.ConfigDefault.NewDecoder(body).Decode(dst)
}

// StatusFromError maps service error categories to HTTP statuses.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errorvalues.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errorvalues.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errorvalues.ErrAlreadyCompleted), errors.Is(err, errorvalues.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, errorvalues.ErrTransientStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
